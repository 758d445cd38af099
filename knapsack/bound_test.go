package knapsack_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbnb/knapsack"
)

// rankedFourItems is {w:7,v:42},{5,25},{4,40},{3,12} in ratio order.
func rankedFourItems(t *testing.T) *knapsack.BoundCalculator {
	t.Helper()
	ranked, _ := knapsack.Rank(toItems([]float64{7, 5, 4, 3}, []float64{42, 25, 40, 12}))
	b, err := knapsack.NewBoundCalculator(ranked, 10)
	require.NoError(t, err)

	return b
}

func TestNewBoundCalculator_NotRanked(t *testing.T) {
	_, err := knapsack.NewBoundCalculator(toItems([]float64{7, 4}, []float64{42, 40}), 10)
	require.ErrorIs(t, err, knapsack.ErrNotRanked)
}

func TestBound_Root(t *testing.T) {
	b := rankedFourItems(t)
	// ranked: (4,40) (7,42) (5,25) (3,12)
	upper, cost, ok := b.Bound(knapsack.Path{})
	require.True(t, ok)
	assert.Equal(t, 65.0, upper) // 40 + 25, the 7 and the 3 are skipped
	assert.Equal(t, 76.0, cost)  // 40 + 6·(42/7)
}

func TestBound_ExcludeFirst(t *testing.T) {
	b := rankedFourItems(t)
	upper, cost, ok := b.Bound(knapsack.Path{}.Child(false))
	require.True(t, ok)
	assert.Equal(t, 54.0, upper) // 42 + 12
	assert.Equal(t, 57.0, cost)  // 42 + 3·(25/5)
}

func TestBound_Infeasible(t *testing.T) {
	b := rankedFourItems(t)
	p := knapsack.Path{}.Child(true).Child(true) // 4 + 7 > 10
	upper, cost, ok := b.Bound(p)
	assert.False(t, ok)
	assert.True(t, math.IsInf(upper, -1))
	assert.True(t, math.IsInf(cost, -1))
}

func TestBound_LeafIsExact(t *testing.T) {
	b := rankedFourItems(t)
	p := knapsack.Path{}.Child(true).Child(false).Child(true).Child(false)
	upper, cost, ok := b.Bound(p)
	require.True(t, ok)
	assert.Equal(t, 65.0, upper)
	assert.Equal(t, upper, cost)
}

func TestPack_MatchesUpper(t *testing.T) {
	b := rankedFourItems(t)

	sel, w, v, ok := b.Pack(knapsack.Path{})
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, sel)
	assert.Equal(t, 9.0, w)
	assert.Equal(t, 65.0, v)

	_, _, _, ok = b.Pack(knapsack.Path{}.Child(true).Child(true))
	assert.False(t, ok)
}

// TestBound_Soundness checks every path of small random instances:
// upper is achievable and cost never underestimates the best completion.
func TestBound_Soundness(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		items, capacity := genInstance(t, 8, seed, seed%2 == 0)
		ranked, _ := knapsack.Rank(items)
		b, err := knapsack.NewBoundCalculator(ranked, capacity)
		require.NoError(t, err)

		var walk func(p knapsack.Path)
		walk = func(p knapsack.Path) {
			upper, cost, ok := b.Bound(p)
			best, feasible := bestCompletion(ranked, capacity, p)
			require.Equal(t, feasible, ok, "seed=%d path=%s", seed, p)
			if ok {
				require.GreaterOrEqual(t, cost, upper, "seed=%d path=%s", seed, p)
				require.GreaterOrEqual(t, cost, best-epsTiny, "seed=%d path=%s", seed, p)
				require.LessOrEqual(t, upper, best+epsTiny, "seed=%d path=%s", seed, p)
			}
			if p.Len() < len(ranked) {
				walk(p.Child(true))
				walk(p.Child(false))
			}
		}
		walk(knapsack.Path{})
	}
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	parent := knapsack.Path{}.Child(true)
	left := parent.Child(true)
	right := parent.Child(false)

	assert.Equal(t, "[(1, 1) (2, 1)]", left.String())
	assert.Equal(t, "[(1, 1) (2, 0)]", right.String())
	assert.Equal(t, "[(1, 1)]", parent.String())
	assert.Equal(t, "[]", knapsack.Path{}.String())
	assert.Equal(t, knapsack.Branch{Item: 2, Included: false}, right.Last())
	assert.Equal(t, knapsack.Branch{}, knapsack.Path{}.Last())

	inc, decided := right.Included(1)
	assert.True(t, decided)
	assert.True(t, inc)
	_, decided = right.Included(3)
	assert.False(t, decided)
}
