package knapsack

import (
	"strconv"
	"strings"
)

// Branch is one include/exclude decision. Item is the 1-based ranked position.
type Branch struct {
	Item     int
	Included bool
}

// String renders the branch as "(item, 1|0)".
func (b Branch) String() string {
	inc := "0"
	if b.Included {
		inc = "1"
	}

	return "(" + strconv.Itoa(b.Item) + ", " + inc + ")"
}

// Path is the ordered list of decisions from the root to a node.
//
// The zero Path is the implicit root (item 0, excluded). Paths are persistent:
// Child copies on extend, so sibling nodes never alias each other's branches.
// Item numbers grow by exactly one per level by construction.
type Path struct {
	branches []Branch
}

// Len returns the number of decided items.
func (p Path) Len() int { return len(p.branches) }

// Last returns the deepest decision, or the root branch {0,false} for the root.
func (p Path) Last() Branch {
	if len(p.branches) == 0 {
		return Branch{}
	}

	return p.branches[len(p.branches)-1]
}

// Child returns a new Path deciding item Len()+1.
func (p Path) Child(included bool) Path {
	next := make([]Branch, len(p.branches)+1)
	copy(next, p.branches)
	next[len(p.branches)] = Branch{Item: len(p.branches) + 1, Included: included}

	return Path{branches: next}
}

// Branches returns a copy of the decisions.
func (p Path) Branches() []Branch {
	if len(p.branches) == 0 {
		return nil
	}
	out := make([]Branch, len(p.branches))
	copy(out, p.branches)

	return out
}

// Included reports the decision for 1-based ranked item i and whether it was decided.
func (p Path) Included(i int) (included, decided bool) {
	if i < 1 || i > len(p.branches) {
		return false, false
	}

	return p.branches[i-1].Included, true
}

// String renders the path like "[(1, 1) (2, 0)]"; the root renders as "[]".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, b := range p.branches {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.String())
	}
	sb.WriteByte(']')

	return sb.String()
}
