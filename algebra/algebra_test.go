package algebra_test

import (
	"errors"
	"testing"

	"github.com/reoring/goschemes/algebra"
	"github.com/reoring/goschemes/category"
)

func TestRings_Display(t *testing.T) {
	gf7, err := algebra.GF(7)
	if err != nil {
		t.Fatalf("GF(7): %v", err)
	}
	z12, _ := algebra.Zmod(12)
	mat, _ := algebra.MatrixSpaceOver(algebra.QQ(), 2)
	cases := []struct {
		r    algebra.Ring
		want string
		key  string
	}{
		{algebra.ZZ(), "Integer Ring", "ZZ"},
		{algebra.QQ(), "Rational Field", "QQ"},
		{gf7, "Finite Field of size 7", "GF(7)"},
		{z12, "Ring of integers modulo 12", "Zmod(12)"},
		{algebra.PolynomialRingOver(algebra.ZZ(), ""), "Univariate Polynomial Ring in x over Integer Ring", "ZZ[x]"},
		{mat, "Full MatrixSpace of 2 by 2 dense matrices over Rational Field", "Mat(QQ,2)"},
	}
	for _, c := range cases {
		if c.r.String() != c.want {
			t.Errorf("String() = %q, want %q", c.r.String(), c.want)
		}
		if c.r.Key() != c.key {
			t.Errorf("Key() = %q, want %q", c.r.Key(), c.key)
		}
	}
}

func TestRings_Properties(t *testing.T) {
	mat2, _ := algebra.MatrixSpaceOver(algebra.ZZ(), 2)
	mat1, _ := algebra.MatrixSpaceOver(algebra.ZZ(), 1)
	if mat2.IsCommutative() {
		t.Fatalf("2x2 matrices must not be commutative")
	}
	if !mat1.IsCommutative() {
		t.Fatalf("1x1 matrices over ZZ are commutative")
	}
	if !category.Same(mat2.Category(), category.Rings()) {
		t.Fatalf("matrix ring category = %v", mat2.Category())
	}
	z7, _ := algebra.Zmod(7)
	if !z7.IsField() || z7.Characteristic() != 7 {
		t.Fatalf("Zmod(7) should be a field of characteristic 7")
	}
	if algebra.ZZ().IsField() || !algebra.QQ().IsField() {
		t.Fatalf("field flags wrong for ZZ/QQ")
	}
}

func TestRings_ConstructorErrors(t *testing.T) {
	if _, err := algebra.Zmod(1); !errors.Is(err, algebra.ErrInvalidModulus) {
		t.Fatalf("Zmod(1) err = %v", err)
	}
	if _, err := algebra.GF(9); !errors.Is(err, algebra.ErrNotPrime) {
		t.Fatalf("GF(9) err = %v", err)
	}
	if _, err := algebra.MatrixSpaceOver(algebra.ZZ(), 0); !errors.Is(err, algebra.ErrInvalidDegree) {
		t.Fatalf("Mat(ZZ,0) err = %v", err)
	}
}

func TestNaturalHom(t *testing.T) {
	phi, err := algebra.NaturalHom(algebra.ZZ(), algebra.QQ())
	if err != nil {
		t.Fatalf("ZZ->QQ: %v", err)
	}
	want := "Natural morphism:\n  From: Integer Ring\n  To:   Rational Field"
	if phi.String() != want {
		t.Fatalf("display = %q", phi.String())
	}
	if !category.IsSubcategory(phi.CategoryFor(), category.Rings()) {
		t.Fatalf("ring hom category should be below rings")
	}

	z12, _ := algebra.Zmod(12)
	z4, _ := algebra.Zmod(4)
	z5, _ := algebra.Zmod(5)
	if _, err := algebra.NaturalHom(z12, z4); err != nil {
		t.Fatalf("Zmod(12)->Zmod(4): %v", err)
	}
	if _, err := algebra.NaturalHom(z12, z5); !errors.Is(err, algebra.ErrNoNaturalMap) {
		t.Fatalf("Zmod(12)->Zmod(5) err = %v", err)
	}
	if _, err := algebra.NaturalHom(algebra.QQ(), algebra.ZZ()); !errors.Is(err, algebra.ErrNoNaturalMap) {
		t.Fatalf("QQ->ZZ err = %v", err)
	}
	if _, err := algebra.NaturalHom(algebra.QQ(), algebra.PolynomialRingOver(algebra.QQ(), "t")); err != nil {
		t.Fatalf("QQ->QQ[t]: %v", err)
	}

	id, _ := algebra.NaturalHom(algebra.QQ(), algebra.QQ())
	if id.String() != "Identity endomorphism of Rational Field" {
		t.Fatalf("identity display = %q", id.String())
	}
}

func TestSetMap_Category(t *testing.T) {
	m := algebra.SetMap{From: algebra.Set{Name: "A"}, To: algebra.Set{Name: "B"}}
	if category.IsSubcategory(m.CategoryFor(), category.Rings()) {
		t.Fatalf("set maps are not ring morphisms")
	}
}

func TestRings_Accessors(t *testing.T) {
	z12, _ := algebra.Zmod(12)
	if z12.Modulus() != 12 {
		t.Fatalf("modulus = %d", z12.Modulus())
	}
	p := algebra.PolynomialRingOver(algebra.QQ(), "t")
	if p.Variable() != "t" || p.Key() != "QQ[t]" {
		t.Fatalf("variable = %q, key = %q", p.Variable(), p.Key())
	}
	if !algebra.Equal(p.BaseRing(), algebra.QQ()) {
		t.Fatalf("base ring = %s", p.BaseRing())
	}
	mat, _ := algebra.MatrixSpaceOver(algebra.ZZ(), 3)
	if mat.Degree() != 3 || !algebra.Equal(mat.BaseRing(), algebra.ZZ()) {
		t.Fatalf("degree = %d, base ring = %s", mat.Degree(), mat.BaseRing())
	}
}

func TestNaturalHom_ZeroValueModulus(t *testing.T) {
	z6, _ := algebra.Zmod(6)
	if _, err := algebra.NaturalHom(z6, algebra.IntegerModRing{}); !errors.Is(err, algebra.ErrNoNaturalMap) {
		t.Fatalf("expected ErrNoNaturalMap, got %v", err)
	}
}

func TestRingHomomorphism_NilCategory(t *testing.T) {
	var h *algebra.RingHomomorphism
	if c := h.CategoryFor(); c != nil {
		t.Fatalf("nil homomorphism category = %v", c)
	}
}
