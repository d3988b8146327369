package codec

import (
	"fmt"
	"strings"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/goschemes/category"
	"github.com/reoring/goschemes/scheme"
)

// Format selects an output or input encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "text", "json", "yaml" and "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want text, json or yaml)", s)
}

// CategoryDescriptor is the exported view of a category.
type CategoryDescriptor struct {
	Name               string   `json:"name" yaml:"name"`
	Key                string   `json:"key" yaml:"key"`
	SuperCategories    []string `json:"supercategories" yaml:"supercategories"`
	AllSuperCategories []string `json:"all_supercategories" yaml:"all_supercategories"`
	Base               string   `json:"base,omitempty" yaml:"base,omitempty"`
}

// DescribeCategory builds the descriptor of c.
func DescribeCategory(c category.Category) CategoryDescriptor {
	d := CategoryDescriptor{Name: c.String(), Key: c.Key(), SuperCategories: []string{}}
	for _, s := range c.SuperCategories() {
		d.SuperCategories = append(d.SuperCategories, s.String())
	}
	for _, s := range category.AllSuperCategories(c)[1:] {
		d.AllSuperCategories = append(d.AllSuperCategories, s.String())
	}
	if ob, ok := c.(category.OverBase); ok {
		d.Base = fmt.Sprint(ob.Base())
	}
	return d
}

func (d CategoryDescriptor) String() string { return d.Name }

// ResultDescriptor is the exported view of a conversion result.
type ResultDescriptor struct {
	Kind           string `json:"kind" yaml:"kind"`
	Key            string `json:"key" yaml:"key"`
	Display        string `json:"display" yaml:"display"`
	CoordinateRing string `json:"coordinate_ring,omitempty" yaml:"coordinate_ring,omitempty"`
	Domain         string `json:"domain,omitempty" yaml:"domain,omitempty"`
	Codomain       string `json:"codomain,omitempty" yaml:"codomain,omitempty"`
}

// DescribeResult builds the descriptor of a scheme or scheme morphism.
func DescribeResult(o scheme.Object) ResultDescriptor {
	d := ResultDescriptor{Key: o.Key(), Display: o.String()}
	switch v := o.(type) {
	case *scheme.Morphism:
		d.Kind = KindMorphism
		d.Domain = v.Domain().String()
		d.Codomain = v.Codomain().String()
	case scheme.Affine:
		d.Kind = KindScheme
		d.CoordinateRing = v.CoordinateRing().String()
	default:
		d.Kind = KindScheme
	}
	return d
}

func (d ResultDescriptor) String() string { return d.Display }

// Marshal encodes v in the given format. FormatText uses fmt.Sprint and
// joins slices line by line.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return j.MarshalIndent(v, "", "  ")
	case FormatYAML:
		return yaml.Marshal(v)
	}
	switch vv := v.(type) {
	case []ResultDescriptor:
		lines := make([]string, len(vv))
		for i, d := range vv {
			lines[i] = d.String()
		}
		return []byte(strings.Join(lines, "\n") + "\n"), nil
	case []CategoryDescriptor:
		lines := make([]string, len(vv))
		for i, d := range vv {
			lines[i] = d.String()
		}
		return []byte(strings.Join(lines, "\n") + "\n"), nil
	}
	return []byte(fmt.Sprint(v) + "\n"), nil
}
