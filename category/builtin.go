package category

// Keys of the built-in categories.
const (
	KeySets             = "sets"
	KeyRings            = "rings"
	KeyCommutativeRings = "commutative_rings"
	KeyHomsets          = "homsets"
)

// basic is a parameterless category with a fixed supercategory list.
type basic struct {
	key    string
	names  string
	supers func() []Category
}

func (b basic) Key() string         { return b.key }
func (b basic) ObjectNames() string { return b.names }
func (b basic) String() string      { return Repr(b.names) }

func (b basic) SuperCategories() []Category {
	if b.supers == nil {
		return nil
	}
	return b.supers()
}

// Sets is the category of sets, the root of the hierarchy.
func Sets() Category { return &basic{key: KeySets, names: "sets"} }

// Rings is the category of (not necessarily commutative) rings.
func Rings() Category {
	return &basic{key: KeyRings, names: "rings", supers: func() []Category { return []Category{Sets()} }}
}

// CommutativeRings is the category of commutative rings.
func CommutativeRings() Category {
	return &basic{key: KeyCommutativeRings, names: "commutative rings", supers: func() []Category { return []Category{Rings()} }}
}

// Homsets is the category of all homsets.
func Homsets() Category {
	return &basic{key: KeyHomsets, names: "homsets", supers: func() []Category { return []Category{Sets()} }}
}

// HomsetsOf returns the category of homsets between objects of c.
func HomsetsOf(c Category) Category {
	return &basic{
		key:    KeyHomsets + "/" + c.Key(),
		names:  "homsets of " + c.ObjectNames(),
		supers: func() []Category { return []Category{Homsets()} },
	}
}
