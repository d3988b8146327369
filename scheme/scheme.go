// Package scheme provides the schemes and scheme morphisms produced by the
// category of schemes: affine schemes (spectra of commutative rings), their
// morphisms induced by ring homomorphisms, and projective spaces.
package scheme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/goschemes/algebra"
	"github.com/reoring/goschemes/category"
)

var (
	ErrNotCommutative = errors.New("scheme: ring is not commutative")
	ErrNotRingMap     = errors.New("scheme: map is not a morphism of rings")
	ErrHomMismatch    = errors.New("scheme: ring map does not land in the coordinate ring")
	ErrUnsupportedHom = errors.New("scheme: hom construction unsupported for this scheme")
)

// Object is either a Scheme or a *Morphism.
type Object interface {
	Key() string
	String() string
	schemeObject()
}

// Scheme is a scheme.
type Scheme interface {
	Object
	// Hom builds the scheme morphism out of this scheme induced by the ring map m.
	Hom(m algebra.Map) (*Morphism, error)
}

// Affine is a scheme with a coordinate ring.
type Affine interface {
	Scheme
	CoordinateRing() algebra.Ring
}

// Equal reports whether two scheme objects are the same.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// ---- Spec ----

// AffineScheme is Spec of a commutative ring.
type AffineScheme struct {
	ring algebra.Ring
}

// Spec returns the spectrum of r.
func Spec(r algebra.Ring) (*AffineScheme, error) {
	if r == nil || !r.IsCommutative() {
		return nil, fmt.Errorf("%w: %v", ErrNotCommutative, r)
	}
	return &AffineScheme{ring: r}, nil
}

func (*AffineScheme) schemeObject() {}

func (a *AffineScheme) CoordinateRing() algebra.Ring { return a.ring }
func (a *AffineScheme) Key() string                  { return "Spec(" + a.ring.Key() + ")" }
func (a *AffineScheme) String() string               { return "Spectrum of " + a.ring.String() }

// Hom returns the morphism Spec(S) -> Spec(R) induced by a ring map m: R -> S,
// where S is the coordinate ring of a.
func (a *AffineScheme) Hom(m algebra.Map) (*Morphism, error) {
	if m == nil || !category.IsSubcategory(m.CategoryFor(), category.Rings()) {
		return nil, fmt.Errorf("%w: %v", ErrNotRingMap, m)
	}
	if !algebra.Equal(m.Codomain(), a.ring) {
		return nil, fmt.Errorf("%w: %s is not %s", ErrHomMismatch, m.Codomain(), a.ring)
	}
	src, ok := m.Domain().(algebra.Ring)
	if !ok {
		return nil, fmt.Errorf("%w: domain %s is not a ring", ErrNotRingMap, m.Domain())
	}
	target, err := Spec(src)
	if err != nil {
		return nil, err
	}
	return &Morphism{domain: a, codomain: target, ringMap: m}, nil
}

// ---- Projective space ----

// ProjectiveSpace is P^n over a ring. It is not affine.
type ProjectiveSpace struct {
	dim  int
	ring algebra.Ring
}

// Projective returns projective space of dimension n over r.
func Projective(n int, r algebra.Ring) (*ProjectiveSpace, error) {
	if n < 0 {
		return nil, fmt.Errorf("scheme: negative dimension %d", n)
	}
	if r == nil || !r.IsCommutative() {
		return nil, fmt.Errorf("%w: %v", ErrNotCommutative, r)
	}
	return &ProjectiveSpace{dim: n, ring: r}, nil
}

func (*ProjectiveSpace) schemeObject() {}

func (p *ProjectiveSpace) Dimension() int         { return p.dim }
func (p *ProjectiveSpace) BaseRing() algebra.Ring { return p.ring }
func (p *ProjectiveSpace) Key() string            { return fmt.Sprintf("P(%d,%s)", p.dim, p.ring.Key()) }
func (p *ProjectiveSpace) String() string {
	return fmt.Sprintf("Projective Space of dimension %d over %s", p.dim, p.ring)
}

// Hom is not available on projective space.
func (p *ProjectiveSpace) Hom(m algebra.Map) (*Morphism, error) {
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedHom, p)
}

// ---- Morphisms ----

// Morphism is an affine scheme morphism induced by a ring homomorphism.
type Morphism struct {
	domain   Scheme
	codomain Scheme
	ringMap  algebra.Map
}

func (*Morphism) schemeObject() {}

func (f *Morphism) Domain() Scheme       { return f.domain }
func (f *Morphism) Codomain() Scheme     { return f.codomain }
func (f *Morphism) RingMap() algebra.Map { return f.ringMap }

func (f *Morphism) Key() string {
	return "hom(" + f.domain.Key() + "->" + f.codomain.Key() + ")"
}

func (f *Morphism) String() string {
	defn := strings.ReplaceAll(f.ringMap.String(), "\n", "\n        ")
	return fmt.Sprintf("Affine Scheme morphism:\n  From: %s\n  To:   %s\n  Defn: %s", f.domain, f.codomain, defn)
}
