package goschemes

import (
	"github.com/reoring/goschemes/algebra"
	"github.com/reoring/goschemes/scheme"
)

// Input is the closed set of values the category of schemes can convert.
// The variants are SchemeInput, SchemeMorphismInput, RingInput, MapInput and
// OtherInput.
type Input interface {
	isInput()
}

// SchemeInput wraps a scheme; it converts to itself.
type SchemeInput struct{ Scheme scheme.Scheme }

// SchemeMorphismInput wraps a scheme morphism; it converts to itself.
type SchemeMorphismInput struct{ Morphism *scheme.Morphism }

// RingInput wraps a ring; commutative rings convert to their spectrum.
type RingInput struct{ Ring algebra.Ring }

// MapInput wraps a map; morphisms of rings convert to scheme morphisms.
type MapInput struct{ Map algebra.Map }

// OtherInput carries any value outside the variants above. It never converts.
type OtherInput struct{ Value any }

func (SchemeInput) isInput()         {}
func (SchemeMorphismInput) isInput() {}
func (RingInput) isInput()           {}
func (MapInput) isInput()            {}
func (OtherInput) isInput()          {}

// InputOf lifts a dynamic value into the Input sum. Values that already are
// an Input are returned as is; nil pointers become OtherInput.
func InputOf(x any) Input {
	switch v := x.(type) {
	case Input:
		return v
	case *scheme.Morphism:
		if v == nil {
			return OtherInput{Value: x}
		}
		return SchemeMorphismInput{Morphism: v}
	case *scheme.AffineScheme:
		if v == nil {
			return OtherInput{Value: x}
		}
		return SchemeInput{Scheme: v}
	case *scheme.ProjectiveSpace:
		if v == nil {
			return OtherInput{Value: x}
		}
		return SchemeInput{Scheme: v}
	case *algebra.RingHomomorphism:
		if v == nil {
			return OtherInput{Value: x}
		}
		return MapInput{Map: v}
	case scheme.Scheme:
		return SchemeInput{Scheme: v}
	case algebra.Ring:
		return RingInput{Ring: v}
	case algebra.Map:
		return MapInput{Map: v}
	default:
		return OtherInput{Value: x}
	}
}

// describe renders an input for error messages.
func describe(in Input) any {
	switch v := in.(type) {
	case SchemeInput:
		return v.Scheme
	case SchemeMorphismInput:
		return v.Morphism
	case RingInput:
		return v.Ring
	case MapInput:
		return v.Map
	case OtherInput:
		return v.Value
	}
	return in
}
