package layout

import "math"

// NoIntrinsicMetric marks a dimension that has no natural size of its own.
const NoIntrinsicMetric = -1.0

// Size is a width/height pair in points.
type Size struct {
	Width  float64
	Height float64
}

// NoIntrinsic is the size of a node whose frame comes entirely from constraints.
func NoIntrinsic() Size {
	return Size{Width: NoIntrinsicMetric, Height: NoIntrinsicMetric}
}

// Rect is a frame in points, origin top-left.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside the rect (right/bottom exclusive).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Node is a named element of the view tree.
type Node struct {
	Name      string
	Intrinsic Size
	// BaselineOffset is the distance from the top edge to the text baseline.
	// Zero puts the baseline on the bottom edge.
	BaselineOffset float64
}

// Tree is a flat, ordered set of nodes laid out inside a root of known bounds.
// Order matters: when constraints run out, intrinsic sizes are applied to
// nodes in the order they were added.
type Tree struct {
	Root   string
	Bounds Rect
	nodes  []Node
	index  map[string]int
}

// NewTree creates a tree whose root node has a fixed frame.
func NewTree(root string, bounds Rect) *Tree {
	return &Tree{
		Root:   root,
		Bounds: bounds,
		index:  map[string]int{},
	}
}

// Add appends nodes to the tree. A node re-added under an existing name replaces it.
func (t *Tree) Add(nodes ...Node) *Tree {
	for _, n := range nodes {
		if i, ok := t.index[n.Name]; ok {
			t.nodes[i] = n
			continue
		}
		t.index[n.Name] = len(t.nodes)
		t.nodes = append(t.nodes, n)
	}
	return t
}

// Node looks up a node by name. The root is reported with its bounds as intrinsic size.
func (t *Tree) Node(name string) (Node, bool) {
	if name == t.Root {
		return Node{Name: t.Root, Intrinsic: Size{Width: t.Bounds.Width, Height: t.Bounds.Height}}, true
	}
	i, ok := t.index[name]
	if !ok {
		return Node{}, false
	}
	return t.nodes[i], true
}

// Names returns the node names in insertion order, root excluded.
func (t *Tree) Names() []string {
	names := make([]string, len(t.nodes))
	for i, n := range t.nodes {
		names[i] = n.Name
	}
	return names
}

// Cell is a frame in terminal cells.
type Cell struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (c Cell) Right() int  { return c.X + c.Width }
func (c Cell) Bottom() int { return c.Y + c.Height }

// Contains reports whether the cell coordinate lies inside the frame.
func (c Cell) Contains(x, y int) bool {
	return x >= c.X && x < c.Right() && y >= c.Y && y < c.Bottom()
}

// Metrics converts between points and terminal cells.
type Metrics struct {
	PointsPerColumn float64
	PointsPerRow    float64
}

// DefaultMetrics approximates a common 8x16 pixel terminal cell.
func DefaultMetrics() Metrics {
	return Metrics{PointsPerColumn: 8, PointsPerRow: 16}
}

func (m Metrics) normalized() Metrics {
	def := DefaultMetrics()
	if m.PointsPerColumn <= 0 {
		m.PointsPerColumn = def.PointsPerColumn
	}
	if m.PointsPerRow <= 0 {
		m.PointsPerRow = def.PointsPerRow
	}
	return m
}

// Points converts a cell count to a size in points.
func (m Metrics) Points(cols, rows int) Size {
	m = m.normalized()
	return Size{Width: float64(cols) * m.PointsPerColumn, Height: float64(rows) * m.PointsPerRow}
}

// Cell snaps a frame to the terminal grid. Edges are rounded independently so
// adjacent frames stay adjacent.
func (m Metrics) Cell(r Rect) Cell {
	m = m.normalized()
	x0 := int(math.Round(r.X / m.PointsPerColumn))
	x1 := int(math.Round(r.Right() / m.PointsPerColumn))
	y0 := int(math.Round(r.Y / m.PointsPerRow))
	y1 := int(math.Round(r.Bottom() / m.PointsPerRow))
	return Cell{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Row returns the terminal row that a baseline at y sits on.
func (m Metrics) Row(y float64) int {
	m = m.normalized()
	return int(math.Ceil(y/m.PointsPerRow)) - 1
}

// Column converts a terminal column to the x coordinate of its center, in points.
func (m Metrics) Column(x int) float64 {
	m = m.normalized()
	return (float64(x) + 0.5) * m.PointsPerColumn
}

// RowCenter converts a terminal row to the y coordinate of its center, in points.
func (m Metrics) RowCenter(y int) float64 {
	m = m.normalized()
	return (float64(y) + 0.5) * m.PointsPerRow
}
