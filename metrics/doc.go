// Package metrics exports knapsack solve statistics to Prometheus.
//
// Collector implements knapsack.Recorder. Register it once and pass it to
// every solve:
//
//	col, err := metrics.NewCollector(prometheus.DefaultRegisterer, "lvbnb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := knapsack.Solve(w, v, c, knapsack.WithRecorder(col))
//
// Exported series (namespace prefix omitted):
//
//   - knapsack_solves_total{outcome="optimal|limit|canceled|error"}
//   - knapsack_nodes_created_total, knapsack_nodes_expanded_total
//   - knapsack_nodes_pruned_total, knapsack_nodes_discarded_total
//   - knapsack_incumbent_updates_total
//   - knapsack_solve_duration_seconds (histogram)
//   - knapsack_frontier_peak_nodes (gauge, last solve)
package metrics
