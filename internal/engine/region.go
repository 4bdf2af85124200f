package engine

import (
	"fmt"

	"github.com/irfansharif/flowangle/internal/geom"
	"github.com/irfansharif/flowangle/internal/inscribe"
)

// Kind tags the variant of a Region.
type Kind int

const (
	KindOuter Kind = iota
	KindCenter
	KindPetal
)

func (k Kind) String() string {
	switch k {
	case KindOuter:
		return "outer"
	case KindCenter:
		return "center"
	case KindPetal:
		return "petal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Region is one area of a decomposed flow shape. It is implemented by
// *Outer, *Center and *Petal only; switch on the concrete type to reach
// variant specific fields.
type Region interface {
	Kind() Kind
	Common() *Base
	region()
}

// Base holds the fields every region variant carries.
type Base struct {
	ID        int
	Boundary  []geom.Point
	Area      float64
	Centroid  geom.Point
	Ellipse   *inscribe.Ellipse   // nil when no candidate fit
	Rectangle *inscribe.Rectangle // nil when no candidate fit
}

func (b *Base) Common() *Base { return b }
func (b *Base) region()       {}

// Outer is the single region of a shape whose curves never cross.
type Outer struct{ Base }

// Center is the area shared by every curve's interior.
type Center struct{ Base }

// Petal is the area running along one side's curve.
type Petal struct {
	Base
	PetalIndex int // index of the curve the petal follows
}

func (*Outer) Kind() Kind  { return KindOuter }
func (*Center) Kind() Kind { return KindCenter }
func (*Petal) Kind() Kind  { return KindPetal }

var (
	_ Region = (*Outer)(nil)
	_ Region = (*Center)(nil)
	_ Region = (*Petal)(nil)
)

// newBase measures a boundary. The centroid is the boundary's vertex mean
// unless the caller overrides it.
func newBase(id int, boundary []geom.Point) Base {
	return Base{
		ID:       id,
		Boundary: boundary,
		Area:     geom.Area(boundary),
		Centroid: geom.Mean(boundary),
	}
}

// inscribe fits the largest ellipse and rectangle inside the region.
func (b *Base) inscribe() {
	b.Ellipse = inscribe.LargestEllipse(b.Boundary)
	b.Rectangle = inscribe.LargestRectangle(b.Boundary)
}
