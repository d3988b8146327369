package goschemes

import (
	"github.com/sirupsen/logrus"

	"github.com/reoring/goschemes/algebra"
	"github.com/reoring/goschemes/category"
	"github.com/reoring/goschemes/scheme"
)

// KeySchemes identifies the category of all schemes.
const KeySchemes = "schemes"

// Schemes is the category of all schemes. Obtain it from Registry.Schemes.
type Schemes struct {
	reg *Registry
}

func (s *Schemes) Key() string         { return KeySchemes }
func (s *Schemes) ObjectNames() string { return "schemes" }
func (s *Schemes) String() string      { return category.Repr(s.ObjectNames()) }

// SuperCategories is always [Sets].
func (s *Schemes) SuperCategories() []category.Category {
	sets, _ := s.reg.cats.Lookup(category.KeySets)
	return []category.Category{sets}
}

// Homsets returns the category of homsets of schemes.
func (s *Schemes) Homsets() category.Category {
	h, _ := s.reg.cats.Get(category.KeyHomsets+"/"+KeySchemes, func() (category.Category, error) {
		return category.HomsetsOf(s), nil
	})
	return h
}

// Call converts a dynamic value; see Convert.
func (s *Schemes) Call(x any) (scheme.Object, error) {
	return s.Convert(InputOf(x))
}

// Convert builds a scheme or scheme morphism from in:
//
//   - schemes and scheme morphisms are returned unchanged;
//   - a commutative ring R gives Spec(R);
//   - a morphism of rings f: R -> S gives the induced Spec(S) -> Spec(R).
//
// Everything else fails with CodeNoConversion.
func (s *Schemes) Convert(in Input) (scheme.Object, error) {
	var cause error
	switch v := in.(type) {
	case SchemeInput:
		if v.Scheme != nil {
			return v.Scheme, nil
		}
	case SchemeMorphismInput:
		if v.Morphism != nil {
			return v.Morphism, nil
		}
	case RingInput:
		if v.Ring != nil && v.Ring.IsCommutative() {
			x, err := scheme.Spec(v.Ring)
			if err == nil {
				s.reg.log.WithField("ring", v.Ring.Key()).Debug("converted ring to spectrum")
				return x, nil
			}
			cause = err
		}
	case MapInput:
		if v.Map != nil && category.IsSubcategory(v.Map.CategoryFor(), category.Rings()) {
			f, err := s.liftRingMap(v.Map)
			if err == nil {
				return f, nil
			}
			cause = err
		}
	case OtherInput:
	}
	return nil, s.noConversion(in, cause)
}

// liftRingMap returns Spec(codomain).Hom(m).
func (s *Schemes) liftRingMap(m algebra.Map) (*scheme.Morphism, error) {
	r, ok := m.Codomain().(algebra.Ring)
	if !ok {
		return nil, scheme.ErrNotRingMap
	}
	a, err := scheme.Spec(r)
	if err != nil {
		return nil, err
	}
	f, err := a.Hom(m)
	if err != nil {
		return nil, err
	}
	s.reg.log.WithFields(logrus.Fields{"from": f.Domain().Key(), "to": f.Codomain().Key()}).Debug("lifted ring map to scheme morphism")
	return f, nil
}

func (s *Schemes) noConversion(in Input, cause error) error {
	it := IssueAt("/", CodeNoConversion, map[string]any{"category": s.String(), "value": describe(in)})
	it.Cause = cause
	it.Hint = "expected a scheme, a scheme morphism, a commutative ring or a morphism of rings"
	return Issues{it}
}
