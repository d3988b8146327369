package goschemes

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/reoring/goschemes/category"
	"github.com/reoring/goschemes/scheme"
)

// Registry owns the category of schemes and the categories of schemes over a
// base. Pass it explicitly (or through WithRegistry) instead of relying on a
// process-wide singleton. A Registry is safe for concurrent use.
type Registry struct {
	cats *category.Registry
	root *Schemes
	log  logrus.FieldLogger
}

// NewRegistry builds a registry with the built-in categories and the category
// of schemes pinned.
func NewRegistry(opts ...Option) *Registry {
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	r := &Registry{log: o.Logger}
	r.cats = category.NewRegistry(category.WithCapacity(o.CacheSize), category.WithLogger(o.Logger))
	r.root = &Schemes{reg: r}
	r.cats.Pin(r.root)
	return r
}

// Categories exposes the underlying category store.
func (r *Registry) Categories() *category.Registry { return r.cats }

// Schemes returns the category of all schemes.
func (r *Registry) Schemes() *Schemes { return r.root }

// SchemesOver returns the category of schemes over x. When x is not a scheme
// it is first converted with Schemes().Call; a conversion that yields a
// morphism fails with CodeInvalidBase.
func (r *Registry) SchemesOver(x any) (*SchemesOverBase, error) {
	base, ok := x.(scheme.Scheme)
	if !ok {
		obj, err := r.root.Call(x)
		if err != nil {
			return nil, err
		}
		if base, ok = obj.(scheme.Scheme); !ok {
			return nil, Issues{IssueAt("/", CodeInvalidBase, map[string]any{"category": r.root.String(), "value": obj})}
		}
	}
	c, err := r.cats.Get(overBaseKey(base), func() (category.Category, error) {
		return &SchemesOverBase{base: base, root: r.root}, nil
	})
	if err != nil {
		return nil, err
	}
	return c.(*SchemesOverBase), nil
}

// Category dispatches like the category constructor: nil yields the category
// of schemes, anything else the category of schemes over it.
func (r *Registry) Category(x any) (category.Category, error) {
	if x == nil {
		return r.root, nil
	}
	return r.SchemesOver(x)
}

// ConvertAll converts every input, collecting failures. The returned slice
// has one entry per input (nil where conversion failed); the error aggregates
// the failed items with their index as path.
func (r *Registry) ConvertAll(ctx context.Context, inputs []Input) ([]scheme.Object, error) {
	out := make([]scheme.Object, len(inputs))
	var merr *multierror.Error
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return out, multierror.Append(merr, err).ErrorOrNil()
		}
		obj, err := r.root.Convert(in)
		if err != nil {
			merr = multierror.Append(merr, reindex(err, fmt.Sprintf("/%d", i)))
			continue
		}
		out[i] = obj
	}
	return out, merr.ErrorOrNil()
}

func reindex(err error, path string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	var moved Issues
	for _, it := range iss {
		it.Path = path
		moved = AppendIssues(moved, it)
	}
	return moved
}

type contextKey int

const _ctxKeyRegistry contextKey = iota

// WithRegistry returns a child context carrying r.
func WithRegistry(ctx context.Context, r *Registry) context.Context {
	return context.WithValue(ctx, _ctxKeyRegistry, r)
}

// RegistryFrom retrieves the registry stored by WithRegistry.
func RegistryFrom(ctx context.Context) (*Registry, error) {
	if r, ok := ctx.Value(_ctxKeyRegistry).(*Registry); ok && r != nil {
		return r, nil
	}
	return nil, Issues{IssueAt("/", CodeDependencyUnavailable, nil)}
}
