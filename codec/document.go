package codec

import (
	"bytes"
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	goschemes "github.com/reoring/goschemes"
)

// Document kinds.
const (
	KindRing       = "ring"
	KindHom        = "hom"
	KindScheme     = "scheme"
	KindProjective = "projective"
	KindMorphism   = "morphism"
	KindOther      = "other"
)

// Document describes one value to convert.
//
//	{"kind":"ring","ring":"ZZ"}
//	{"kind":"hom","domain":"ZZ","codomain":"QQ"}
//	{"kind":"scheme","ring":"GF(7)"}
//	{"kind":"projective","dim":2,"ring":"QQ"}
//	{"kind":"morphism","domain":"ZZ","codomain":"QQ"}   // Spec(QQ) -> Spec(ZZ)
//	{"kind":"other","value":42}
type Document struct {
	Kind     string `json:"kind" yaml:"kind"`
	Ring     string `json:"ring,omitempty" yaml:"ring,omitempty"`
	Domain   string `json:"domain,omitempty" yaml:"domain,omitempty"`
	Codomain string `json:"codomain,omitempty" yaml:"codomain,omitempty"`
	Dim      int    `json:"dim,omitempty" yaml:"dim,omitempty"`
	Value    any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Input turns the document into a conversion input.
func (d Document) Input() (goschemes.Input, error) {
	switch d.Kind {
	case KindRing:
		r, err := ParseRing(d.Ring)
		if err != nil {
			return nil, err
		}
		return goschemes.RingInput{Ring: r}, nil
	case KindHom:
		phi, err := naturalHom(d.Domain, d.Codomain)
		if err != nil {
			return nil, err
		}
		return goschemes.MapInput{Map: phi}, nil
	case KindScheme:
		x, err := spec(d.Ring)
		if err != nil {
			return nil, err
		}
		return goschemes.SchemeInput{Scheme: x}, nil
	case KindProjective:
		p, err := projective(d.Dim, d.Ring)
		if err != nil {
			return nil, err
		}
		return goschemes.SchemeInput{Scheme: p}, nil
	case KindMorphism:
		phi, err := naturalHom(d.Domain, d.Codomain)
		if err != nil {
			return nil, err
		}
		x, err := spec(d.Codomain)
		if err != nil {
			return nil, err
		}
		f, err := x.Hom(phi)
		if err != nil {
			return nil, err
		}
		return goschemes.SchemeMorphismInput{Morphism: f}, nil
	case KindOther:
		return goschemes.OtherInput{Value: d.Value}, nil
	}
	return nil, goschemes.Issues{goschemes.IssueAt("/kind", goschemes.CodeUnknownKind, map[string]any{"value": d.Kind})}
}

// DecodeJSON reads a single document or an array of documents.
func DecodeJSON(data []byte) ([]goschemes.Input, error) {
	var docs []Document
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := j.Unmarshal(trimmed, &docs); err != nil {
			return nil, parseIssue("/", err)
		}
	} else {
		var d Document
		if err := j.Unmarshal(trimmed, &d); err != nil {
			return nil, parseIssue("/", err)
		}
		docs = []Document{d}
	}
	return inputs(docs)
}

// DecodeYAML reads a multi-document YAML stream. Each document is either a
// single mapping or a sequence of mappings.
func DecodeYAML(data []byte) ([]goschemes.Input, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []Document
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, parseIssue("/", err)
		}
		if len(node.Content) == 0 {
			continue
		}
		root := node.Content[0]
		if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
			continue
		}
		switch root.Kind {
		case yaml.SequenceNode:
			var many []Document
			if err := root.Decode(&many); err != nil {
				return nil, parseIssue(fmt.Sprintf("/%d", len(docs)), err)
			}
			docs = append(docs, many...)
		default:
			var d Document
			if err := root.Decode(&d); err != nil {
				return nil, parseIssue(fmt.Sprintf("/%d", len(docs)), err)
			}
			docs = append(docs, d)
		}
	}
	return inputs(docs)
}

// Decode dispatches on format; FormatText reads one value per line in
// command-line notation.
func Decode(data []byte, f Format) ([]goschemes.Input, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	}
	var out []goschemes.Input
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		in, err := ParseValue(string(line))
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func inputs(docs []Document) ([]goschemes.Input, error) {
	out := make([]goschemes.Input, 0, len(docs))
	var all goschemes.Issues
	for i, d := range docs {
		in, err := d.Input()
		if err != nil {
			if iss, ok := goschemes.AsIssues(err); ok {
				for k := range iss {
					iss[k].Path = fmt.Sprintf("/%d%s", i, trimRoot(iss[k].Path))
				}
				all = goschemes.AppendIssues(all, iss...)
				continue
			}
			it := goschemes.IssueAt(fmt.Sprintf("/%d", i), goschemes.CodeInvalidRing, map[string]any{"value": describeDoc(d)})
			it.Cause = errors.Wrapf(err, "document %d", i)
			all = goschemes.AppendIssues(all, it)
			continue
		}
		out = append(out, in)
	}
	if len(all) > 0 {
		return nil, all
	}
	return out, nil
}

func trimRoot(p string) string {
	if p == "/" {
		return ""
	}
	return p
}

func describeDoc(d Document) string {
	switch d.Kind {
	case KindHom, KindMorphism:
		return d.Domain + "->" + d.Codomain
	case KindProjective:
		return fmt.Sprintf("P(%d,%s)", d.Dim, d.Ring)
	}
	return d.Ring
}

func parseIssue(path string, err error) error {
	it := goschemes.IssueAt(path, goschemes.CodeParseError, nil)
	it.Cause = err
	return goschemes.Issues{it}
}
