// Package hypermedia assembles Collection+JSON responses from route names.
//
// A Hypermedia value wraps the route registry and turns semantic operation
// names ("root", "create_workflow") into the links, queries, and template
// of one immutable document. Assembly fails fast: the first unresolvable
// transition aborts the whole response, because a document with a broken
// link is worse than no document.
package hypermedia

import (
	"github.com/waypost-dev/waypost/cj"
	"github.com/waypost-dev/waypost/registry"
	"github.com/waypost-dev/waypost/transition"
)

// Hypermedia builds Collection+JSON documents against an immutable route
// registry. It holds no per-request state and is safe for concurrent use.
type Hypermedia struct {
	resolver *transition.Resolver
}

// New returns a Hypermedia over the given registry. Resolver options (such
// as transition.Lenient) apply to every transition the assembler resolves.
func New(reg *registry.Registry, opts ...transition.Option) *Hypermedia {
	return &Hypermedia{resolver: transition.NewResolver(reg, opts...)}
}

// Resolver returns the underlying transition resolver.
func (h *Hypermedia) Resolver() *transition.Resolver {
	return h.resolver
}

type linkSpec struct {
	name string
	rel  string
	args map[string]any
}

type templateSpec struct {
	name     string
	args     map[string]any
	defaults map[string]any
}

type collectionSpec struct {
	links      []linkSpec
	queries    []linkSpec
	template   *templateSpec
	items      []cj.Item
	rawLinks   []cj.Link
	rawQueries []cj.Query
}

// CollectionOption adds content to a collection under assembly.
type CollectionOption func(*collectionSpec)

// WithLink adds a link resolved from the named route. An optional single
// rel overrides the route's declared relation.
func WithLink(name string, rel ...string) CollectionOption {
	return WithLinkArgs(name, nil, rel...)
}

// WithLinkArgs adds a link resolved from the named route with arguments
// bound to its path and query parameters.
func WithLinkArgs(name string, args map[string]any, rel ...string) CollectionOption {
	spec := linkSpec{name: name, args: args}
	if len(rel) > 0 {
		spec.rel = rel[0]
	}
	return func(c *collectionSpec) {
		c.links = append(c.links, spec)
	}
}

// WithQuery adds a query form resolved from the named route.
func WithQuery(name string, rel ...string) CollectionOption {
	return WithQueryArgs(name, nil, rel...)
}

// WithQueryArgs adds a query form for a route whose path parameters need
// binding.
func WithQueryArgs(name string, args map[string]any, rel ...string) CollectionOption {
	spec := linkSpec{name: name, args: args}
	if len(rel) > 0 {
		spec.rel = rel[0]
	}
	return func(c *collectionSpec) {
		c.queries = append(c.queries, spec)
	}
}

// WithTemplate sets the collection's write template from the named route.
// A collection carries at most one template; the last option wins.
func WithTemplate(name string) CollectionOption {
	return WithTemplateDefaults(name, nil, nil)
}

// WithTemplateArgs sets the write template for a route whose path
// parameters need binding.
func WithTemplateArgs(name string, args map[string]any) CollectionOption {
	return WithTemplateDefaults(name, args, nil)
}

// WithTemplateDefaults sets the write template, binding path arguments and
// pre-filling field values from defaults.
func WithTemplateDefaults(name string, args, defaults map[string]any) CollectionOption {
	return func(c *collectionSpec) {
		c.template = &templateSpec{name: name, args: args, defaults: defaults}
	}
}

// WithItem adds one item to the collection.
func WithItem(item cj.Item) CollectionOption {
	return func(c *collectionSpec) {
		c.items = append(c.items, item)
	}
}

// WithItems adds items to the collection in order.
func WithItems(items ...cj.Item) CollectionOption {
	return func(c *collectionSpec) {
		c.items = append(c.items, items...)
	}
}

// WithRawLink adds an already built link, bypassing the resolver. This
// keeps direct data-model construction available alongside named routes.
func WithRawLink(l cj.Link) CollectionOption {
	return func(c *collectionSpec) {
		c.rawLinks = append(c.rawLinks, l)
	}
}

// WithRawQuery adds an already built query, bypassing the resolver.
func WithRawQuery(q cj.Query) CollectionOption {
	return func(c *collectionSpec) {
		c.rawQueries = append(c.rawQueries, q)
	}
}

// Collection assembles one document. When href is empty the first resolved
// link supplies the collection href, and a link whose href matches the
// collection href takes rel "self" unless a rel was given explicitly.
// The first resolver failure aborts assembly.
func (h *Hypermedia) Collection(title, href string, opts ...CollectionOption) (*cj.CollectionJSON, error) {
	var spec collectionSpec
	for _, opt := range opts {
		opt(&spec)
	}

	links := append([]cj.Link(nil), spec.rawLinks...)
	resolved := make([]*transition.Transition, 0, len(spec.links))
	for _, ls := range spec.links {
		t, err := h.resolver.Resolve(ls.name, ls.args)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, t)
	}

	if href == "" {
		if len(resolved) > 0 {
			href = resolved[0].Href
		} else if len(links) > 0 {
			href = links[0].Href
		}
	}

	for i, t := range resolved {
		rel := spec.links[i].rel
		if rel == "" && t.Href == href {
			rel = "self"
		}
		links = append(links, t.Link(rel))
	}

	queries := append([]cj.Query(nil), spec.rawQueries...)
	for _, qs := range spec.queries {
		t, err := h.resolver.Resolve(qs.name, qs.args)
		if err != nil {
			return nil, err
		}
		q := t.Query()
		if qs.rel != "" {
			q.Rel = qs.rel
		}
		queries = append(queries, q)
	}

	var tmpl *cj.Template
	if spec.template != nil {
		t, err := h.resolver.Resolve(spec.template.name, spec.template.args)
		if err != nil {
			return nil, err
		}
		built := t.Template(spec.template.defaults)
		tmpl = &built
	}

	doc := cj.NewCollection(title, href)
	doc.Collection.Links = links
	doc.Collection.Items = spec.items
	doc.Collection.Queries = queries
	doc.Collection.Template = tmpl
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ErrorCollection builds the error-variant document. It never carries
// links or items, per the mutual-exclusivity rule.
func (h *Hypermedia) ErrorCollection(title string, code int, message string) *cj.CollectionJSON {
	return ErrorCollection(title, code, message)
}

// ErrorCollection builds an error-variant document without a registry.
func ErrorCollection(title string, code int, message string) *cj.CollectionJSON {
	doc := cj.NewCollection(title, "")
	doc.Collection.Error = &cj.Error{
		Title:   title,
		Code:    code,
		Message: message,
	}
	return doc
}
