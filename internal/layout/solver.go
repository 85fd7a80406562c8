package layout

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrUnknownNode      = errors.New("layout: unknown node")
	ErrUnderconstrained = errors.New("layout: frame not fully determined")
)

const epsilon = 1e-6

// Result holds solved frames in points.
type Result struct {
	Frames    map[string]Rect
	Baselines map[string]float64
	// Conflicts lists constraints that could not be satisfied by the solved frames.
	Conflicts []Constraint
}

// Cells snaps every solved frame to the terminal grid.
func (r Result) Cells(m Metrics) map[string]Cell {
	cells := make(map[string]Cell, len(r.Frames))
	for name, f := range r.Frames {
		cells[name] = m.Cell(f)
	}
	return cells
}

// Solve resolves the frames of every node in the tree.
//
// Equalities are propagated in both directions until nothing changes. When the
// system stalls, the next node with an open dimension receives its intrinsic
// size; after that, open left hand sides of inequalities are set to their bound.
func Solve(t *Tree, constraints []Constraint) (Result, error) {
	for _, c := range constraints {
		if _, ok := t.Node(c.Item); !ok {
			return Result{}, fmt.Errorf("%w: %q in %s", ErrUnknownNode, c.Item, c)
		}
		if c.To != "" {
			if _, ok := t.Node(c.To); !ok {
				return Result{}, fmt.Errorf("%w: %q in %s", ErrUnknownNode, c.To, c)
			}
		}
	}

	s := newSolver(t)
	s.run(constraints)

	res := Result{
		Frames:    make(map[string]Rect, len(s.boxes)),
		Baselines: make(map[string]float64, len(s.boxes)),
	}
	var open []string
	for _, name := range t.Names() {
		b := s.boxes[name]
		if !b.h.resolved() || !b.v.resolved() {
			open = append(open, name)
			continue
		}
		res.Frames[name] = b.frame()
		res.Baselines[name], _ = b.v.value(edgeBase)
	}
	res.Frames[t.Root] = t.Bounds

	idx := make([]int, 0, len(s.conflicts))
	for i := range s.conflicts {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		res.Conflicts = append(res.Conflicts, constraints[i])
	}

	if len(open) > 0 {
		return res, fmt.Errorf("%w: %s", ErrUnderconstrained, strings.Join(open, ", "))
	}
	return res, nil
}

type solver struct {
	tree      *Tree
	boxes     map[string]*box
	conflicts map[int]bool
}

func newSolver(t *Tree) *solver {
	s := &solver{
		tree:      t,
		boxes:     map[string]*box{},
		conflicts: map[int]bool{},
	}
	root := &box{}
	root.h.set(edgeStart, t.Bounds.X)
	root.h.set(edgeSize, t.Bounds.Width)
	root.v.set(edgeStart, t.Bounds.Y)
	root.v.set(edgeSize, t.Bounds.Height)
	s.boxes[t.Root] = root

	for _, n := range t.nodes {
		b := &box{node: n}
		b.v.baseOffset = n.BaselineOffset
		s.boxes[n.Name] = b
	}
	return s
}

func (s *solver) run(cs []Constraint) {
	for {
		for s.propagate(cs) {
			// until a full pass changes nothing
		}
		if s.settled() {
			break
		}
		if s.applyIntrinsic() {
			continue
		}
		if s.applyBounds(cs) {
			continue
		}
		break
	}
	s.checkInequalities(cs)
}

func (s *solver) settled() bool {
	for _, b := range s.boxes {
		if !b.h.resolved() || !b.v.resolved() {
			return false
		}
	}
	return true
}

// propagate makes one pass over the equalities and reports whether anything changed.
func (s *solver) propagate(cs []Constraint) bool {
	progress := false
	for i, c := range cs {
		if c.Relation != Equal || s.conflicts[i] {
			continue
		}
		lhs := s.boxes[c.Item]
		lv, lok := lhs.value(c.Attr)
		rv, rok := s.rhs(c)

		switch {
		case rok && !lok:
			changed, ok := lhs.set(c.Attr, rv)
			if !ok {
				s.conflicts[i] = true
			}
			progress = progress || changed
		case lok && !rok && c.To != "" && c.Multiplier != 0:
			changed, ok := s.boxes[c.To].set(c.ToAttr, (lv-c.Constant)/c.Multiplier)
			if !ok {
				s.conflicts[i] = true
			}
			progress = progress || changed
		case lok && rok:
			if !approx(lv, rv) {
				s.conflicts[i] = true
			}
		}
	}
	return progress
}

func (s *solver) rhs(c Constraint) (float64, bool) {
	if c.To == "" || c.ToAttr == NotAnAttribute {
		return c.Constant, true
	}
	v, ok := s.boxes[c.To].value(c.ToAttr)
	if !ok {
		return 0, false
	}
	return v*c.Multiplier + c.Constant, true
}

// applyIntrinsic gives the first node with an open dimension its natural size.
func (s *solver) applyIntrinsic() bool {
	for _, n := range s.tree.nodes {
		b := s.boxes[n.Name]
		applied := false
		if !b.h.hasSize && n.Intrinsic.Width >= 0 {
			b.h.set(edgeSize, n.Intrinsic.Width)
			applied = true
		}
		if !b.v.hasSize && n.Intrinsic.Height >= 0 {
			b.v.set(edgeSize, n.Intrinsic.Height)
			applied = true
		}
		if applied {
			return true
		}
	}
	return false
}

// applyBounds settles open inequality left hand sides at their limit.
func (s *solver) applyBounds(cs []Constraint) bool {
	progress := false
	for i, c := range cs {
		if c.Relation == Equal || s.conflicts[i] {
			continue
		}
		lhs := s.boxes[c.Item]
		if _, ok := lhs.value(c.Attr); ok {
			continue
		}
		rv, ok := s.rhs(c)
		if !ok {
			continue
		}
		changed, ok := lhs.set(c.Attr, rv)
		if !ok {
			s.conflicts[i] = true
		}
		progress = progress || changed
	}
	return progress
}

func (s *solver) checkInequalities(cs []Constraint) {
	for i, c := range cs {
		if c.Relation == Equal || s.conflicts[i] {
			continue
		}
		lv, lok := s.boxes[c.Item].value(c.Attr)
		rv, rok := s.rhs(c)
		if !lok || !rok {
			continue
		}
		if c.Relation == GreaterOrEqual && lv < rv-epsilon {
			s.conflicts[i] = true
		}
		if c.Relation == LessOrEqual && lv > rv+epsilon {
			s.conflicts[i] = true
		}
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

type edge int

const (
	edgeStart edge = iota
	edgeEnd
	edgeSize
	edgeCenter
	edgeBase
)

func edgeOf(a Attribute) edge {
	switch a {
	case Right, Trailing, Bottom:
		return edgeEnd
	case Width, Height:
		return edgeSize
	case CenterX, CenterY:
		return edgeCenter
	case Baseline:
		return edgeBase
	default:
		return edgeStart
	}
}

type box struct {
	node Node
	h    span
	v    span
}

func (b *box) axis(a Attribute) *span {
	if a.horizontal() {
		return &b.h
	}
	return &b.v
}

func (b *box) value(a Attribute) (float64, bool) {
	if a == NotAnAttribute {
		return 0, false
	}
	return b.axis(a).value(edgeOf(a))
}

func (b *box) set(a Attribute, v float64) (changed, ok bool) {
	if a == NotAnAttribute {
		return false, false
	}
	return b.axis(a).set(edgeOf(a), v)
}

func (b *box) frame() Rect {
	return Rect{X: b.h.start, Y: b.v.start, Width: b.h.size, Height: b.v.size}
}

// span holds what is known about one axis of a frame. Any two independent
// facts fix the span.
type span struct {
	start, size, end, center, base float64

	hasStart, hasSize, hasEnd, hasCenter, hasBase bool

	baseOffset float64
}

func (s *span) resolved() bool {
	return s.hasStart && s.hasSize
}

func (s *span) value(e edge) (float64, bool) {
	switch e {
	case edgeStart:
		return s.start, s.hasStart
	case edgeSize:
		return s.size, s.hasSize
	case edgeEnd:
		if s.resolved() {
			return s.start + s.size, true
		}
		return s.end, s.hasEnd
	case edgeCenter:
		if s.resolved() {
			return s.start + s.size/2, true
		}
		return s.center, s.hasCenter
	case edgeBase:
		if s.hasStart && s.baseOffset > 0 {
			return s.start + s.baseOffset, true
		}
		if s.resolved() {
			return s.start + s.size, true
		}
		return s.base, s.hasBase
	}
	return 0, false
}

// set records a fact. ok is false when the fact contradicts what is known.
func (s *span) set(e edge, v float64) (changed, ok bool) {
	if cur, known := s.value(e); known {
		return false, approx(cur, v)
	}
	switch e {
	case edgeStart:
		s.start, s.hasStart = v, true
	case edgeSize:
		s.size, s.hasSize = v, true
	case edgeEnd:
		s.end, s.hasEnd = v, true
	case edgeCenter:
		s.center, s.hasCenter = v, true
	case edgeBase:
		s.base, s.hasBase = v, true
	}
	s.settle()
	return true, s.consistent()
}

func (s *span) settle() {
	for changed := true; changed && !s.resolved(); {
		changed = false
		if !s.hasStart {
			if v, ok := s.deriveStart(); ok {
				s.start, s.hasStart = v, true
				changed = true
			}
		}
		if !s.hasSize {
			if v, ok := s.deriveSize(); ok {
				s.size, s.hasSize = v, true
				changed = true
			}
		}
	}
}

func (s *span) deriveStart() (float64, bool) {
	switch {
	case s.hasBase && s.baseOffset > 0:
		return s.base - s.baseOffset, true
	case s.hasBase && s.hasSize:
		return s.base - s.size, true
	case s.hasEnd && s.hasSize:
		return s.end - s.size, true
	case s.hasCenter && s.hasSize:
		return s.center - s.size/2, true
	case s.hasCenter && s.hasEnd:
		return 2*s.center - s.end, true
	}
	return 0, false
}

func (s *span) deriveSize() (float64, bool) {
	if !s.hasStart {
		return 0, false
	}
	switch {
	case s.hasEnd:
		return s.end - s.start, true
	case s.hasCenter:
		return 2 * (s.center - s.start), true
	case s.hasBase && s.baseOffset <= 0:
		return s.base - s.start, true
	}
	return 0, false
}

// consistent checks the recorded facts against the resolved span.
func (s *span) consistent() bool {
	if !s.resolved() {
		return true
	}
	if s.size < -epsilon {
		return false
	}
	if s.hasEnd && !approx(s.end, s.start+s.size) {
		return false
	}
	if s.hasCenter && !approx(s.center, s.start+s.size/2) {
		return false
	}
	if s.hasBase {
		off := s.size
		if s.baseOffset > 0 {
			off = s.baseOffset
		}
		if !approx(s.base, s.start+off) {
			return false
		}
	}
	return true
}
