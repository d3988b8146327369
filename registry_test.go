package goschemes_test

import (
	"context"
	"errors"
	"testing"

	goschemes "github.com/reoring/goschemes"
	"github.com/reoring/goschemes/algebra"
	"github.com/reoring/goschemes/category"
	"github.com/reoring/goschemes/scheme"
)

func TestSchemesOver_SpecZZ(t *testing.T) {
	reg := newRegistry()
	specZZ, _ := scheme.Spec(algebra.ZZ())
	c, err := reg.SchemesOver(specZZ)
	if err != nil {
		t.Fatalf("schemes over: %v", err)
	}
	if c.ObjectNames() != "schemes over Integer Ring" {
		t.Fatalf("names = %q", c.ObjectNames())
	}
	if c.String() != "Category of schemes over Integer Ring" {
		t.Fatalf("repr = %q", c.String())
	}
	if c.BaseScheme() != scheme.Scheme(specZZ) {
		t.Fatalf("base = %v", c.BaseScheme())
	}
	if c.Base() != any(specZZ) {
		t.Fatalf("Base() should return the base scheme")
	}
	sup := c.SuperCategories()
	if len(sup) != 1 || sup[0] != category.Category(reg.Schemes()) {
		t.Fatalf("supers = %v", sup)
	}
}

func TestSchemesOver_RingIsNormalized(t *testing.T) {
	reg := newRegistry()
	c, err := reg.SchemesOver(algebra.ZZ())
	if err != nil {
		t.Fatalf("schemes over ZZ: %v", err)
	}
	if c.String() != "Category of schemes over Integer Ring" {
		t.Fatalf("repr = %q", c.String())
	}
	if c.BaseScheme().String() != "Spectrum of Integer Ring" {
		t.Fatalf("base = %s", c.BaseScheme())
	}
}

func TestSchemesOver_NonAffineBase(t *testing.T) {
	reg := newRegistry()
	p, _ := scheme.Projective(2, algebra.QQ())
	c, err := reg.SchemesOver(p)
	if err != nil {
		t.Fatalf("schemes over P2: %v", err)
	}
	if c.ObjectNames() != "schemes over Projective Space of dimension 2 over Rational Field" {
		t.Fatalf("names = %q", c.ObjectNames())
	}
}

func TestSchemesOver_CachedByBaseIdentity(t *testing.T) {
	reg := newRegistry()
	a, _ := reg.SchemesOver(algebra.ZZ())
	specZZ, _ := scheme.Spec(algebra.ZZ())
	b, _ := reg.SchemesOver(specZZ)
	if a != b {
		t.Fatalf("categories over equal bases should be shared")
	}
	c, _ := reg.SchemesOver(algebra.QQ())
	if a == c {
		t.Fatalf("different bases must give different categories")
	}
	if reg.Categories().Len() != 2 {
		t.Fatalf("cache len = %d", reg.Categories().Len())
	}
}

func TestSchemesOver_CacheEviction(t *testing.T) {
	reg := newRegistry(goschemes.WithCacheSize(1))
	a, _ := reg.SchemesOver(algebra.ZZ())
	_, _ = reg.SchemesOver(algebra.QQ())
	a2, _ := reg.SchemesOver(algebra.ZZ())
	if a == a2 {
		t.Fatalf("evicted category should be rebuilt")
	}
	if a.Key() != a2.Key() || a.String() != a2.String() {
		t.Fatalf("rebuilt category should denote the same category")
	}
	if reg.Categories().Stats().Evictions != 2 {
		t.Fatalf("evictions = %d", reg.Categories().Stats().Evictions)
	}
}

func TestSchemesOver_Errors(t *testing.T) {
	reg := newRegistry()
	if _, err := reg.SchemesOver(17); !goschemes.IsCode(err, goschemes.CodeNoConversion) {
		t.Fatalf("expected no_conversion, got %v", err)
	}
	phi, _ := algebra.NaturalHom(algebra.ZZ(), algebra.QQ())
	if _, err := reg.SchemesOver(phi); !goschemes.IsCode(err, goschemes.CodeInvalidBase) {
		t.Fatalf("expected invalid_base, got %v", err)
	}
}

func TestCategory_Dispatch(t *testing.T) {
	reg := newRegistry()
	c, err := reg.Category(nil)
	if err != nil || c != category.Category(reg.Schemes()) {
		t.Fatalf("nil should dispatch to the root category, got %v err=%v", c, err)
	}
	c, err = reg.Category(algebra.QQ())
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if c.String() != "Category of schemes over Rational Field" {
		t.Fatalf("repr = %q", c.String())
	}
	if _, ok := c.(category.OverBase); !ok {
		t.Fatalf("over-base category should implement category.OverBase")
	}
	if !category.IsSubcategory(c, category.Sets()) {
		t.Fatalf("schemes over QQ should be below sets")
	}
}

func TestConvertAll_CollectsFailures(t *testing.T) {
	reg := newRegistry()
	phi, _ := algebra.NaturalHom(algebra.ZZ(), algebra.QQ())
	inputs := []goschemes.Input{
		goschemes.RingInput{Ring: algebra.ZZ()},
		goschemes.OtherInput{Value: "nope"},
		goschemes.MapInput{Map: phi},
		goschemes.OtherInput{Value: 1},
	}
	out, err := reg.ConvertAll(context.Background(), inputs)
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	if out[0] == nil || out[2] == nil || out[1] != nil || out[3] != nil {
		t.Fatalf("unexpected results: %v", out)
	}
	iss, ok := goschemes.AsIssues(err)
	if !ok || iss[0].Path != "/1" {
		t.Fatalf("expected first failure at /1, got %v", err)
	}
}

func TestConvertAll_Cancelled(t *testing.T) {
	reg := newRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := reg.ConvertAll(ctx, []goschemes.Input{goschemes.RingInput{Ring: algebra.ZZ()}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRegistryContext(t *testing.T) {
	reg := newRegistry()
	ctx := goschemes.WithRegistry(context.Background(), reg)
	got, err := goschemes.RegistryFrom(ctx)
	if err != nil || got != reg {
		t.Fatalf("expected stored registry, got %v err=%v", got, err)
	}
	if _, err := goschemes.RegistryFrom(context.Background()); !goschemes.IsCode(err, goschemes.CodeDependencyUnavailable) {
		t.Fatalf("expected dependency_unavailable, got %v", err)
	}
}
