package layout

import "fmt"

// Attribute names one edge, dimension or guide of a node's frame.
type Attribute int

const (
	NotAnAttribute Attribute = iota
	Left
	Right
	Top
	Bottom
	Leading
	Trailing
	Width
	Height
	CenterX
	CenterY
	Baseline
)

var attributeNames = map[Attribute]string{
	NotAnAttribute: "none",
	Left:           "left",
	Right:          "right",
	Top:            "top",
	Bottom:         "bottom",
	Leading:        "leading",
	Trailing:       "trailing",
	Width:          "width",
	Height:         "height",
	CenterX:        "centerX",
	CenterY:        "centerY",
	Baseline:       "baseline",
}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// horizontal reports whether the attribute lives on the x axis.
// Leading and trailing map to left and right; layouts are left-to-right.
func (a Attribute) horizontal() bool {
	switch a {
	case Left, Right, Leading, Trailing, Width, CenterX:
		return true
	}
	return false
}

// Relation is the comparison between the two sides of a constraint.
type Relation int

const (
	Equal Relation = iota
	GreaterOrEqual
	LessOrEqual
)

func (r Relation) String() string {
	switch r {
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	default:
		return "=="
	}
}

// Constraint reads as: Item.Attr Relation To.ToAttr*Multiplier + Constant.
// An empty To makes the right hand side the constant alone.
type Constraint struct {
	Item       string
	Attr       Attribute
	Relation   Relation
	To         string
	ToAttr     Attribute
	Multiplier float64
	Constant   float64
}

// Pin relates an attribute of item to an attribute of another node, offset by constant.
func Pin(item string, attr Attribute, to string, toAttr Attribute, constant float64) Constraint {
	return Constraint{
		Item:       item,
		Attr:       attr,
		Relation:   Equal,
		To:         to,
		ToAttr:     toAttr,
		Multiplier: 1,
		Constant:   constant,
	}
}

// Fixed sets an attribute (usually Width or Height) to a constant.
func Fixed(item string, attr Attribute, constant float64) Constraint {
	return Constraint{
		Item:     item,
		Attr:     attr,
		Relation: Equal,
		ToAttr:   NotAnAttribute,
		Constant: constant,
	}
}

// AtLeast requires item.attr >= to.toAttr + constant.
func AtLeast(item string, attr Attribute, to string, toAttr Attribute, constant float64) Constraint {
	c := Pin(item, attr, to, toAttr, constant)
	c.Relation = GreaterOrEqual
	return c
}

func (c Constraint) String() string {
	lhs := fmt.Sprintf("%s.%s", c.Item, c.Attr)
	if c.To == "" {
		return fmt.Sprintf("%s %s %g", lhs, c.Relation, c.Constant)
	}
	rhs := fmt.Sprintf("%s.%s", c.To, c.ToAttr)
	if c.Multiplier != 1 {
		rhs = fmt.Sprintf("%s*%g", rhs, c.Multiplier)
	}
	switch {
	case c.Constant > 0:
		rhs = fmt.Sprintf("%s + %g", rhs, c.Constant)
	case c.Constant < 0:
		rhs = fmt.Sprintf("%s - %g", rhs, -c.Constant)
	}
	return fmt.Sprintf("%s %s %s", lhs, c.Relation, rhs)
}
