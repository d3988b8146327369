package algebra

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/reoring/goschemes/category"
)

// Parent is anything a map can start or end at.
type Parent interface {
	// Key identifies the parent; equal keys mean equal parents.
	Key() string
	String() string
}

// Ring is a ring with unit.
type Ring interface {
	Parent
	IsCommutative() bool
	IsField() bool
	Characteristic() int
	// Category is the most specific ring category the ring belongs to.
	Category() category.Category
}

var (
	ErrInvalidModulus = errors.New("algebra: modulus must be at least 2")
	ErrNotPrime       = errors.New("algebra: field order must be prime")
	ErrInvalidDegree  = errors.New("algebra: matrix degree must be positive")
)

// Equal reports whether two parents are the same.
func Equal(a, b Parent) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

func ringCategory(r Ring) category.Category {
	if r.IsCommutative() {
		return category.CommutativeRings()
	}
	return category.Rings()
}

// ---- ZZ ----

type integerRing struct{}

// ZZ returns the ring of integers.
func ZZ() Ring { return integerRing{} }

func (integerRing) Key() string                 { return "ZZ" }
func (integerRing) String() string              { return "Integer Ring" }
func (integerRing) IsCommutative() bool         { return true }
func (integerRing) IsField() bool               { return false }
func (integerRing) Characteristic() int         { return 0 }
func (integerRing) Category() category.Category { return category.CommutativeRings() }

// ---- QQ ----

type rationalField struct{}

// QQ returns the field of rational numbers.
func QQ() Ring { return rationalField{} }

func (rationalField) Key() string                 { return "QQ" }
func (rationalField) String() string              { return "Rational Field" }
func (rationalField) IsCommutative() bool         { return true }
func (rationalField) IsField() bool               { return true }
func (rationalField) Characteristic() int         { return 0 }
func (rationalField) Category() category.Category { return category.CommutativeRings() }

// ---- ZZ/nZZ ----

// IntegerModRing is ZZ/nZZ. Rings built with GF display as finite fields.
type IntegerModRing struct {
	n     int
	field bool
}

// Zmod returns the ring of integers modulo n.
func Zmod(n int) (IntegerModRing, error) {
	if n < 2 {
		return IntegerModRing{}, fmt.Errorf("%w: got %d", ErrInvalidModulus, n)
	}
	return IntegerModRing{n: n}, nil
}

// GF returns the prime field of order p.
func GF(p int) (IntegerModRing, error) {
	if p < 2 || !big.NewInt(int64(p)).ProbablyPrime(20) {
		return IntegerModRing{}, fmt.Errorf("%w: got %d", ErrNotPrime, p)
	}
	return IntegerModRing{n: p, field: true}, nil
}

func (r IntegerModRing) Modulus() int { return r.n }

func (r IntegerModRing) Key() string {
	if r.field {
		return fmt.Sprintf("GF(%d)", r.n)
	}
	return fmt.Sprintf("Zmod(%d)", r.n)
}

func (r IntegerModRing) String() string {
	if r.field {
		return fmt.Sprintf("Finite Field of size %d", r.n)
	}
	return fmt.Sprintf("Ring of integers modulo %d", r.n)
}

func (r IntegerModRing) IsCommutative() bool         { return true }
func (r IntegerModRing) IsField() bool               { return r.field || big.NewInt(int64(r.n)).ProbablyPrime(20) }
func (r IntegerModRing) Characteristic() int         { return r.n }
func (r IntegerModRing) Category() category.Category { return category.CommutativeRings() }

// ---- R[x] ----

// PolynomialRing is a univariate polynomial ring over a base ring.
type PolynomialRing struct {
	base     Ring
	variable string
}

// PolynomialRingOver returns base[variable]; an empty variable defaults to "x".
func PolynomialRingOver(base Ring, variable string) PolynomialRing {
	if variable == "" {
		variable = "x"
	}
	return PolynomialRing{base: base, variable: variable}
}

func (r PolynomialRing) BaseRing() Ring   { return r.base }
func (r PolynomialRing) Variable() string { return r.variable }
func (r PolynomialRing) Key() string      { return r.base.Key() + "[" + r.variable + "]" }

func (r PolynomialRing) String() string {
	return fmt.Sprintf("Univariate Polynomial Ring in %s over %s", r.variable, r.base)
}

func (r PolynomialRing) IsCommutative() bool         { return r.base.IsCommutative() }
func (r PolynomialRing) IsField() bool               { return false }
func (r PolynomialRing) Characteristic() int         { return r.base.Characteristic() }
func (r PolynomialRing) Category() category.Category { return ringCategory(r) }

// ---- Mat_n(R) ----

// MatrixSpace is the ring of n by n matrices over a base ring.
type MatrixSpace struct {
	base Ring
	n    int
}

// MatrixSpaceOver returns the ring of n by n matrices over base.
func MatrixSpaceOver(base Ring, n int) (MatrixSpace, error) {
	if n < 1 {
		return MatrixSpace{}, fmt.Errorf("%w: got %d", ErrInvalidDegree, n)
	}
	return MatrixSpace{base: base, n: n}, nil
}

func (r MatrixSpace) BaseRing() Ring { return r.base }
func (r MatrixSpace) Degree() int    { return r.n }
func (r MatrixSpace) Key() string    { return fmt.Sprintf("Mat(%s,%d)", r.base.Key(), r.n) }

func (r MatrixSpace) String() string {
	return fmt.Sprintf("Full MatrixSpace of %d by %d dense matrices over %s", r.n, r.n, r.base)
}

// IsCommutative is false as soon as there is room for two non-commuting
// elementary matrices.
func (r MatrixSpace) IsCommutative() bool         { return r.n == 1 && r.base.IsCommutative() }
func (r MatrixSpace) IsField() bool               { return r.n == 1 && r.base.IsField() }
func (r MatrixSpace) Characteristic() int         { return r.base.Characteristic() }
func (r MatrixSpace) Category() category.Category { return ringCategory(r) }
