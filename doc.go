// Package goschemes provides the category of schemes:
//
//   - Classification of algebraic objects: Schemes (all schemes) and
//     SchemesOverBase (schemes over a fixed base scheme), with their
//     supercategory links into the category hierarchy
//   - Conversion of rings and ring homomorphisms into schemes and scheme
//     morphisms via a closed Input sum (Schemes.Convert)
//   - A stable error model via Issues (path, code, message)
//   - An explicit Registry that shares category instances and caches
//     categories over a base
//
// Design policy:
//   - Keep only public APIs in the root package; the algebra model lives under
//     algebra/ and scheme/, the category lattice under category/.
//   - Place document codecs under codec/, and the CLI under cmd/goschemes.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := goschemes.NewRegistry()
//	x, err := reg.Schemes().Call(algebra.ZZ())  // Spectrum of Integer Ring
//	c, err := reg.SchemesOver(algebra.ZZ())     // Category of schemes over Integer Ring
package goschemes
