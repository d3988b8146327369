package goschemes

import (
	"github.com/reoring/goschemes/category"
	"github.com/reoring/goschemes/scheme"
)

// SchemesOverBase is the category of schemes over a fixed base scheme.
// Obtain it from Registry.SchemesOver.
type SchemesOverBase struct {
	base scheme.Scheme
	root *Schemes
}

var _ category.OverBase = (*SchemesOverBase)(nil)

func overBaseKey(base scheme.Scheme) string { return KeySchemes + "/" + base.Key() }

func (c *SchemesOverBase) Key() string { return overBaseKey(c.base) }

// Base satisfies category.OverBase.
func (c *SchemesOverBase) Base() any { return c.base }

// BaseScheme returns the base scheme.
func (c *SchemesOverBase) BaseScheme() scheme.Scheme { return c.base }

// ObjectNames names affine bases by their coordinate ring.
func (c *SchemesOverBase) ObjectNames() string {
	if a, ok := c.base.(scheme.Affine); ok {
		return "schemes over " + a.CoordinateRing().String()
	}
	return "schemes over " + c.base.String()
}

func (c *SchemesOverBase) String() string { return category.Repr(c.ObjectNames()) }

// SuperCategories is always [Schemes].
func (c *SchemesOverBase) SuperCategories() []category.Category {
	return []category.Category{c.root}
}
