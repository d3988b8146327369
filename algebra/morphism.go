package algebra

import (
	"errors"
	"fmt"

	"github.com/reoring/goschemes/category"
)

// Map is a morphism between two parents in some category.
type Map interface {
	Domain() Parent
	Codomain() Parent
	// CategoryFor is the category in which the map is a morphism.
	CategoryFor() category.Category
	String() string
}

// ErrNoNaturalMap is returned when two rings have no canonical homomorphism.
var ErrNoNaturalMap = errors.New("algebra: no natural map")

// RingHomomorphism is a canonical homomorphism between rings.
type RingHomomorphism struct {
	domain   Ring
	codomain Ring
}

// NaturalHom returns the canonical homomorphism from r to s. ZZ maps to every
// ring; ZZ/nZZ maps to ZZ/mZZ when m divides n; a ring maps into polynomial
// and matrix rings over anything it maps to.
func NaturalHom(r, s Ring) (*RingHomomorphism, error) {
	if !hasNaturalMap(r, s) {
		return nil, fmt.Errorf("%w from %s to %s", ErrNoNaturalMap, r, s)
	}
	return &RingHomomorphism{domain: r, codomain: s}, nil
}

func hasNaturalMap(r, s Ring) bool {
	if Equal(r, s) {
		return true
	}
	if _, ok := r.(integerRing); ok {
		return true
	}
	if a, ok := r.(IntegerModRing); ok {
		if b, ok := s.(IntegerModRing); ok {
			return b.n >= 2 && a.n%b.n == 0
		}
	}
	switch t := s.(type) {
	case PolynomialRing:
		return hasNaturalMap(r, t.base)
	case MatrixSpace:
		return hasNaturalMap(r, t.base)
	}
	return false
}

func (h *RingHomomorphism) Domain() Parent   { return h.domain }
func (h *RingHomomorphism) Codomain() Parent { return h.codomain }
func (h *RingHomomorphism) IsIdentity() bool { return Equal(h.domain, h.codomain) }

// CategoryFor is CommutativeRings when both ends are commutative, Rings
// otherwise. A nil homomorphism belongs to no category.
func (h *RingHomomorphism) CategoryFor() category.Category {
	if h == nil {
		return nil
	}
	if h.domain.IsCommutative() && h.codomain.IsCommutative() {
		return category.CommutativeRings()
	}
	return category.Rings()
}

func (h *RingHomomorphism) String() string {
	if h.IsIdentity() {
		return fmt.Sprintf("Identity endomorphism of %s", h.domain)
	}
	return fmt.Sprintf("Natural morphism:\n  From: %s\n  To:   %s", h.domain, h.codomain)
}

// Set is a plain named set.
type Set struct {
	Name string
}

func (s Set) Key() string    { return "set:" + s.Name }
func (s Set) String() string { return s.Name }

// SetMap is a map of sets with no algebraic structure.
type SetMap struct {
	From, To Parent
}

func (m SetMap) Domain() Parent                 { return m.From }
func (m SetMap) Codomain() Parent               { return m.To }
func (m SetMap) CategoryFor() category.Category { return category.Sets() }

func (m SetMap) String() string {
	return fmt.Sprintf("Set-theoretic map:\n  From: %s\n  To:   %s", m.From, m.To)
}
