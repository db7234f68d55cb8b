package wbs

import (
	"testing"

	"github.com/steveyegge/wbs/internal/types"
)

func goal(id, parentID string, status types.Status) *types.Goal {
	return &types.Goal{
		ID:          id,
		Description: "goal " + id,
		ParentID:    parentID,
		Status:      status,
		IsDraft:     true,
	}
}

func docWith(goals ...*types.Goal) *Document {
	d := NewDocument()
	d.Goals = goals
	return d
}

func ids(goals []*types.Goal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFindGoal(t *testing.T) {
	d := docWith(goal("a", "", types.StatusTodo), goal("b", "a", types.StatusTodo))

	if g := d.FindGoal("b"); g == nil || g.ID != "b" {
		t.Errorf("FindGoal(b) = %v, want goal b", g)
	}
	if g := d.FindGoal("missing"); g != nil {
		t.Errorf("FindGoal(missing) = %v, want nil", g)
	}
	if idx := d.FindGoalIndex("a"); idx != 0 {
		t.Errorf("FindGoalIndex(a) = %d, want 0", idx)
	}
	if idx := d.FindGoalIndex("missing"); idx != -1 {
		t.Errorf("FindGoalIndex(missing) = %d, want -1", idx)
	}
}

func TestChildrenAndLeaf(t *testing.T) {
	d := docWith(
		goal("root", "", types.StatusTodo),
		goal("a", "root", types.StatusTodo),
		goal("b", "root", types.StatusTodo),
		goal("a1", "a", types.StatusTodo),
	)

	if got := ids(d.Children("root")); !equalIDs(got, []string{"a", "b"}) {
		t.Errorf("Children(root) = %v, want [a b]", got)
	}
	if got := ids(d.Children("")); !equalIDs(got, []string{"root"}) {
		t.Errorf("Children(\"\") = %v, want [root]", got)
	}
	if d.IsLeaf("root") {
		t.Error("IsLeaf(root) = true, want false")
	}
	if !d.IsLeaf("a1") {
		t.Error("IsLeaf(a1) = false, want true")
	}
	// A missing ID has no children, so it reads as a leaf.
	if !d.IsLeaf("missing") {
		t.Error("IsLeaf(missing) = false, want true")
	}
}

func TestDescendantsDepthFirst(t *testing.T) {
	// root -> a -> (a1, a2), root -> b
	d := docWith(
		goal("root", "", types.StatusTodo),
		goal("a", "root", types.StatusTodo),
		goal("b", "root", types.StatusTodo),
		goal("a1", "a", types.StatusTodo),
		goal("a2", "a", types.StatusTodo),
	)

	got := ids(d.Descendants("root"))
	want := []string{"a", "a1", "a2", "b"}
	if !equalIDs(got, want) {
		t.Errorf("Descendants(root) = %v, want %v", got, want)
	}
	if got := d.Descendants("a1"); len(got) != 0 {
		t.Errorf("Descendants(a1) = %v, want empty", ids(got))
	}
}

func TestAncestorsNearestFirst(t *testing.T) {
	d := docWith(
		goal("root", "", types.StatusTodo),
		goal("mid", "root", types.StatusTodo),
		goal("leaf", "mid", types.StatusTodo),
	)

	got := ids(d.Ancestors("leaf"))
	want := []string{"mid", "root"}
	if !equalIDs(got, want) {
		t.Errorf("Ancestors(leaf) = %v, want %v", got, want)
	}
	if got := d.Ancestors("root"); len(got) != 0 {
		t.Errorf("Ancestors(root) = %v, want empty", ids(got))
	}
	// Dangling parent terminates the walk instead of failing.
	d2 := docWith(goal("x", "ghost", types.StatusTodo))
	if got := d2.Ancestors("x"); len(got) != 0 {
		t.Errorf("Ancestors(x) = %v, want empty", ids(got))
	}
}

func TestIsDescendant(t *testing.T) {
	d := docWith(
		goal("root", "", types.StatusTodo),
		goal("a", "root", types.StatusTodo),
		goal("a1", "a", types.StatusTodo),
		goal("b", "root", types.StatusTodo),
	)

	tests := []struct {
		ancestor, candidate string
		want                bool
	}{
		{"root", "a1", true},
		{"a", "a1", true},
		{"a1", "a", false},
		{"b", "a1", false},
		{"root", "root", false},
	}
	for _, tt := range tests {
		if got := d.IsDescendant(tt.ancestor, tt.candidate); got != tt.want {
			t.Errorf("IsDescendant(%s, %s) = %v, want %v", tt.ancestor, tt.candidate, got, tt.want)
		}
	}
}

func TestSiblings(t *testing.T) {
	d := docWith(
		goal("r1", "", types.StatusTodo),
		goal("r2", "", types.StatusTodo),
		goal("a", "r1", types.StatusTodo),
		goal("b", "r1", types.StatusTodo),
	)

	if got := ids(d.Siblings("a")); !equalIDs(got, []string{"b"}) {
		t.Errorf("Siblings(a) = %v, want [b]", got)
	}
	if got := ids(d.Siblings("r1")); !equalIDs(got, []string{"r2"}) {
		t.Errorf("Siblings(r1) = %v, want [r2]", got)
	}
	if got := d.Siblings("missing"); got != nil {
		t.Errorf("Siblings(missing) = %v, want nil", ids(got))
	}
}

func TestInsertGoalAtPosition(t *testing.T) {
	tests := []struct {
		name         string
		insertBefore string
		want         []string
	}{
		{"append when empty target", "", []string{"a", "b", "new"}},
		{"append when target missing", "nope", []string{"a", "b", "new"}},
		{"splice before match", "b", []string{"a", "new", "b"}},
		{"splice at head", "a", []string{"new", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goals := []*types.Goal{goal("a", "", types.StatusTodo), goal("b", "", types.StatusTodo)}
			got := ids(InsertGoalAtPosition(goals, goal("new", "", types.StatusTodo), tt.insertBefore))
			if !equalIDs(got, tt.want) {
				t.Errorf("InsertGoalAtPosition(%q) = %v, want %v", tt.insertBefore, got, tt.want)
			}
		})
	}
}

func TestSortGoalsDepthFirst(t *testing.T) {
	tests := []struct {
		name  string
		goals []*types.Goal
		want  []string
	}{
		{
			name:  "empty",
			goals: nil,
			want:  []string{},
		},
		{
			name: "already canonical",
			goals: []*types.Goal{
				goal("r", "", ""), goal("a", "r", ""), goal("b", "r", ""),
			},
			want: []string{"r", "a", "b"},
		},
		{
			name: "child spliced ahead of parent",
			goals: []*types.Goal{
				goal("a1", "a", ""), goal("r", "", ""), goal("a", "r", ""),
			},
			want: []string{"r", "a", "a1"},
		},
		{
			name: "sibling order preserved across subtrees",
			goals: []*types.Goal{
				goal("r", "", ""), goal("b", "r", ""), goal("a", "r", ""),
				goal("b1", "b", ""), goal("a1", "a", ""),
			},
			want: []string{"r", "b", "b1", "a", "a1"},
		},
		{
			name: "orphan treated as root after true roots",
			goals: []*types.Goal{
				goal("orphan", "ghost", ""), goal("r", "", ""), goal("kid", "orphan", ""),
			},
			want: []string{"r", "orphan", "kid"},
		},
		{
			name: "cycle remnants still emitted",
			goals: []*types.Goal{
				goal("x", "y", ""), goal("y", "x", ""), goal("r", "", ""),
			},
			want: []string{"r", "x", "y"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SortGoalsDepthFirst(tt.goals))
			if !equalIDs(got, tt.want) {
				t.Errorf("SortGoalsDepthFirst() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Canonical order property: after sorting, every goal with a resolvable
// parent appears strictly after it.
func TestSortGoalsDepthFirstParentBeforeChild(t *testing.T) {
	goals := []*types.Goal{
		goal("c2", "b", ""), goal("a", "r", ""), goal("r", "", ""),
		goal("b", "r", ""), goal("c1", "b", ""), goal("a1", "a", ""),
	}
	sorted := SortGoalsDepthFirst(goals)
	pos := make(map[string]int, len(sorted))
	for i, g := range sorted {
		pos[g.ID] = i
	}
	for _, g := range sorted {
		if g.ParentID == "" {
			continue
		}
		parentPos, ok := pos[g.ParentID]
		if !ok {
			continue
		}
		if parentPos >= pos[g.ID] {
			t.Errorf("goal %s at %d precedes its parent %s at %d", g.ID, pos[g.ID], g.ParentID, parentPos)
		}
	}
	// Sibling relative order under b: c2 before c1 as in input.
	if pos["c2"] > pos["c1"] {
		t.Errorf("sibling order not preserved: c2 at %d, c1 at %d", pos["c2"], pos["c1"])
	}
}
