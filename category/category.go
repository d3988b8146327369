package category

// Category is a node of the category hierarchy.
//
// Identity is carried by Key: two categories with the same key are the same
// category, whichever registry built them.
type Category interface {
	// Key identifies the category (for example: "sets", "schemes/Spec(ZZ)").
	Key() string
	// ObjectNames is the plural noun phrase for the objects ("schemes over Integer Ring").
	ObjectNames() string
	// String renders "Category of <ObjectNames>".
	String() string
	// SuperCategories lists the immediate supercategories.
	SuperCategories() []Category
}

// OverBase is implemented by categories parameterized by a base object.
type OverBase interface {
	Category
	Base() any
}

// Repr renders the canonical display form for object names.
func Repr(objectNames string) string { return "Category of " + objectNames }

// Same reports whether a and b denote the same category.
func Same(a, b Category) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// AllSuperCategories returns c followed by every supercategory reachable from
// it, breadth-first, each key once.
func AllSuperCategories(c Category) []Category {
	if c == nil {
		return nil
	}
	seen := map[string]struct{}{c.Key(): {}}
	out := []Category{c}
	for i := 0; i < len(out); i++ {
		for _, s := range out[i].SuperCategories() {
			if _, ok := seen[s.Key()]; ok {
				continue
			}
			seen[s.Key()] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// IsSubcategory reports whether sub is sup or reaches sup through its
// supercategories.
func IsSubcategory(sub, sup Category) bool {
	if sub == nil || sup == nil {
		return false
	}
	for _, c := range AllSuperCategories(sub) {
		if c.Key() == sup.Key() {
			return true
		}
	}
	return false
}
