package layout

import (
	"errors"
	"testing"
)

func headerTree(width, height float64) (*Tree, []Constraint) {
	t := NewTree("view", Rect{Width: width, Height: height})
	t.Add(
		Node{Name: "container", Intrinsic: NoIntrinsic()},
		Node{Name: "label", Intrinsic: Size{Width: 80, Height: 16}, BaselineOffset: 16},
		Node{Name: "cancel", Intrinsic: Size{Width: 48, Height: 16}, BaselineOffset: 23},
		Node{Name: "done", Intrinsic: Size{Width: 32, Height: 16}, BaselineOffset: 23},
		Node{Name: "content", Intrinsic: Size{Width: 160, Height: 96}},
	)

	cs := []Constraint{
		Fixed("cancel", Width, 71),
		Fixed("cancel", Height, 30),
		Fixed("done", Width, 71),
		Fixed("done", Height, 30),
		Pin("cancel", Top, "container", Top, 7),
		Pin("cancel", Leading, "container", Leading, 10),
		Pin("label", Baseline, "cancel", Baseline, 0),
		Pin("label", Leading, "cancel", Trailing, 10),
		Pin("done", Baseline, "label", Baseline, 0),
		Pin("done", Leading, "label", Trailing, 10),
		Pin("container", Trailing, "done", Trailing, 10),
		Pin("content", CenterX, "container", CenterX, 0),
		Pin("content", Bottom, "container", Bottom, 0),
		Pin("content", Top, "cancel", Bottom, 5),
		AtLeast("container", Width, "content", Width, 0),
		Pin("container", Leading, "view", Leading, 0),
		Pin("container", Trailing, "view", Trailing, 0),
		Pin("container", Bottom, "view", Bottom, 0),
	}
	return t, cs
}

func TestSolve_HeaderChain(t *testing.T) {
	tree, cs := headerTree(640, 384)

	res, err := Solve(tree, cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Conflicts) != 0 {
		t.Fatalf("expected no conflicts, got %v", res.Conflicts)
	}

	tests := []struct {
		name string
		want Rect
	}{
		{"content", Rect{X: 240, Y: 288, Width: 160, Height: 96}},
		{"cancel", Rect{X: 10, Y: 253, Width: 71, Height: 30}},
		{"done", Rect{X: 559, Y: 253, Width: 71, Height: 30}},
		{"label", Rect{X: 91, Y: 260, Width: 458, Height: 16}},
		{"container", Rect{X: 0, Y: 246, Width: 640, Height: 138}},
	}
	for _, tt := range tests {
		got := res.Frames[tt.name]
		if got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}

	if res.Baselines["label"] != res.Baselines["cancel"] {
		t.Errorf("label baseline %v should match cancel baseline %v", res.Baselines["label"], res.Baselines["cancel"])
	}
	if res.Baselines["done"] != res.Baselines["label"] {
		t.Errorf("done baseline %v should match label baseline %v", res.Baselines["done"], res.Baselines["label"])
	}
}

func TestSolve_NarrowHostReportsInequality(t *testing.T) {
	tree, cs := headerTree(120, 384)

	res, err := Solve(tree, cs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, c := range res.Conflicts {
		if c.Relation == GreaterOrEqual && c.Item == "container" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected container width inequality among conflicts, got %v", res.Conflicts)
	}
}

func TestSolve_UnknownNode(t *testing.T) {
	tree := NewTree("view", Rect{Width: 100, Height: 100})
	tree.Add(Node{Name: "a", Intrinsic: NoIntrinsic()})

	_, err := Solve(tree, []Constraint{Pin("a", Top, "missing", Top, 0)})
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}

func TestSolve_Underconstrained(t *testing.T) {
	tree := NewTree("view", Rect{Width: 100, Height: 100})
	tree.Add(Node{Name: "a", Intrinsic: NoIntrinsic()})

	_, err := Solve(tree, []Constraint{Pin("a", Leading, "view", Leading, 0)})
	if !errors.Is(err, ErrUnderconstrained) {
		t.Fatalf("expected ErrUnderconstrained, got %v", err)
	}
}

func TestSolve_ConflictingEqualities(t *testing.T) {
	tree := NewTree("view", Rect{Width: 100, Height: 100})
	tree.Add(Node{Name: "a", Intrinsic: Size{Width: 10, Height: 10}})

	res, err := Solve(tree, []Constraint{
		Fixed("a", Width, 20),
		Fixed("a", Width, 30),
		Pin("a", Leading, "view", Leading, 0),
		Pin("a", Top, "view", Top, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(res.Conflicts))
	}
	if res.Frames["a"].Width != 20 {
		t.Errorf("expected first constraint to win with width 20, got %v", res.Frames["a"].Width)
	}
}

func TestSolve_InequalityBoundsOpenValue(t *testing.T) {
	tree := NewTree("view", Rect{Width: 100, Height: 100})
	tree.Add(
		Node{Name: "a", Intrinsic: NoIntrinsic()},
		Node{Name: "b", Intrinsic: Size{Width: 40, Height: 10}},
	)

	res, err := Solve(tree, []Constraint{
		Pin("a", Leading, "view", Leading, 0),
		Pin("a", Top, "view", Top, 0),
		Fixed("a", Height, 10),
		AtLeast("a", Width, "b", Width, 0),
		Pin("b", Top, "a", Bottom, 0),
		Pin("b", Leading, "a", Leading, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Frames["a"].Width != 40 {
		t.Errorf("expected a to grow to 40, got %v", res.Frames["a"].Width)
	}
}

func TestMetrics_Cell(t *testing.T) {
	m := DefaultMetrics()
	tests := []struct {
		in   Rect
		want Cell
	}{
		{Rect{X: 10, Y: 7, Width: 71, Height: 30}, Cell{X: 1, Y: 0, Width: 9, Height: 2}},
		{Rect{X: 0, Y: 0, Width: 640, Height: 384}, Cell{X: 0, Y: 0, Width: 80, Height: 24}},
		{Rect{X: 240, Y: 288, Width: 160, Height: 96}, Cell{X: 30, Y: 18, Width: 20, Height: 6}},
	}
	for _, tt := range tests {
		if got := m.Cell(tt.in); got != tt.want {
			t.Errorf("Cell(%+v): expected %+v, got %+v", tt.in, tt.want, got)
		}
	}
}

func TestMetrics_ZeroValueUsesDefaults(t *testing.T) {
	var m Metrics
	if got := m.Points(2, 3); got != (Size{Width: 16, Height: 48}) {
		t.Errorf("expected default metrics, got %+v", got)
	}
	if got := m.Row(23); got != 1 {
		t.Errorf("expected baseline at 23pt on row 1, got %d", got)
	}
}

func TestConstraint_String(t *testing.T) {
	tests := []struct {
		c    Constraint
		want string
	}{
		{Fixed("done", Width, 71), "done.width == 71"},
		{Pin("cancel", Top, "container", Top, 7), "cancel.top == container.top + 7"},
		{AtLeast("container", Width, "content", Width, 0), "container.width >= content.width"},
		{Pin("a", Bottom, "b", Top, -5), "a.bottom == b.top - 5"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
