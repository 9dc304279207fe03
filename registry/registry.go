// Package registry provides a read-only index over the host router's named
// operations: for each name, the path template, HTTP method, and declared
// parameters. It is built once at startup and is immutable afterwards, so
// any number of request handlers may consult it concurrently.
package registry

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// Location says where a route parameter is carried.
type Location int

const (
	// InPath is a placeholder in the path template, e.g. {id}.
	InPath Location = iota
	// InQuery is a URL query parameter.
	InQuery
	// InBody is a request body field.
	InBody
)

// String returns the string representation of a Location.
func (l Location) String() string {
	switch l {
	case InPath:
		return "path"
	case InQuery:
		return "query"
	case InBody:
		return "body"
	default:
		return "unknown"
	}
}

// Parameter describes one declared parameter of a route.
type Parameter struct {
	Name       string
	Location   Location
	Type       string // string, integer, number, boolean
	Required   bool
	Prompt     string
	Default    any
	Options    []string
	RenderHint string
}

// RouteDescriptor is one registry entry: a named operation with its path
// template, method, and parameter contract.
type RouteDescriptor struct {
	Name       string
	Method     string
	Path       string
	Rel        string // default link relation; falls back to Name when empty
	Title      string // human-readable prompt
	Parameters []Parameter
}

// PathParameters returns the descriptor's path parameters in declared order.
func (d *RouteDescriptor) PathParameters() []Parameter {
	return d.parametersIn(InPath)
}

// QueryParameters returns the descriptor's query parameters in declared order.
func (d *RouteDescriptor) QueryParameters() []Parameter {
	return d.parametersIn(InQuery)
}

// BodyParameters returns the descriptor's body parameters in declared order.
func (d *RouteDescriptor) BodyParameters() []Parameter {
	return d.parametersIn(InBody)
}

func (d *RouteDescriptor) parametersIn(loc Location) []Parameter {
	var out []Parameter
	for _, p := range d.Parameters {
		if p.Location == loc {
			out = append(out, p)
		}
	}
	return out
}

// UnknownRouteError reports a lookup for a name that is not registered.
type UnknownRouteError struct {
	Name string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("unknown route: %q", e.Name)
}

// Registry is the immutable route index. Construct one with a Builder or
// FromChi; the zero value is empty but usable.
type Registry struct {
	byName map[string]*RouteDescriptor
	order  []string
}

// Describe returns the descriptor registered under name.
func (r *Registry) Describe(name string) (*RouteDescriptor, error) {
	if d, ok := r.byName[name]; ok {
		// Copy so callers cannot mutate registry state.
		cp := *d
		cp.Parameters = append([]Parameter(nil), d.Parameters...)
		return &cp, nil
	}
	return nil, &UnknownRouteError{Name: name}
}

// Routes returns all descriptors in registration order.
func (r *Registry) Routes() []RouteDescriptor {
	out := make([]RouteDescriptor, 0, len(r.order))
	for _, name := range r.order {
		d := r.byName[name]
		cp := *d
		cp.Parameters = append([]Parameter(nil), d.Parameters...)
		out = append(out, cp)
	}
	return out
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	return len(r.order)
}

var placeholderPattern = regexp.MustCompile(`\{([^}]+)\}`)

// pathPlaceholders extracts placeholder names from a path template in
// left-to-right order. Chi-style regex constraints ({id:[0-9]+}) are
// reduced to the bare name.
func pathPlaceholders(path string) []string {
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(path, -1) {
		name := m[1]
		if i := strings.Index(name, ":"); i >= 0 {
			name = name[:i]
		}
		names = append(names, name)
	}
	return names
}

// Builder accumulates route descriptors and validates them as a whole.
// Ambiguous or malformed registrations are rejected by Build, before any
// request is served, rather than surfacing at resolution time.
type Builder struct {
	routes []RouteDescriptor
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Route adds a descriptor for the given operation name. Path parameters are
// derived from the template's placeholders; query and body parameters are
// declared with the Query and Body options.
func (b *Builder) Route(name, method, path string, params ...Parameter) *Builder {
	d := RouteDescriptor{
		Name:   name,
		Method: strings.ToUpper(method),
		Path:   path,
	}
	for _, ph := range pathPlaceholders(path) {
		d.Parameters = append(d.Parameters, Parameter{
			Name:     ph,
			Location: InPath,
			Type:     "string",
			Required: true,
		})
	}
	d.Parameters = append(d.Parameters, params...)
	b.routes = append(b.routes, d)
	return b
}

// Annotate sets the rel and title of the descriptors added under name.
// Names that match nothing are ignored.
func (b *Builder) Annotate(name, rel, title string) *Builder {
	for i := range b.routes {
		if b.routes[i].Name == name {
			if rel != "" {
				b.routes[i].Rel = rel
			}
			if title != "" {
				b.routes[i].Title = title
			}
		}
	}
	return b
}

// Add appends a fully specified descriptor without deriving anything.
func (b *Builder) Add(d RouteDescriptor) *Builder {
	d.Method = strings.ToUpper(d.Method)
	b.routes = append(b.routes, d)
	return b
}

// Build validates the accumulated descriptors and returns the registry.
// It fails on duplicate names, on path templates whose placeholders do not
// match the declared path parameters, and on unnamed routes.
func (b *Builder) Build() (*Registry, error) {
	reg := &Registry{byName: make(map[string]*RouteDescriptor, len(b.routes))}

	for i := range b.routes {
		d := b.routes[i]
		if d.Name == "" {
			return nil, fmt.Errorf("route %s %s has no name", d.Method, d.Path)
		}
		if _, dup := reg.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate route name: %q", d.Name)
		}
		if err := validateDescriptor(&d); err != nil {
			return nil, err
		}
		cp := d
		cp.Parameters = append([]Parameter(nil), d.Parameters...)
		reg.byName[d.Name] = &cp
		reg.order = append(reg.order, d.Name)
	}

	return reg, nil
}

// MustBuild is Build for static route tables; it panics on error.
func (b *Builder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return reg
}

func validateDescriptor(d *RouteDescriptor) error {
	switch d.Method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete:
	default:
		return fmt.Errorf("route %q: unsupported method %q", d.Name, d.Method)
	}

	declared := make(map[string]Location, len(d.Parameters))
	for _, p := range d.Parameters {
		if p.Name == "" {
			return fmt.Errorf("route %q: parameter with empty name", d.Name)
		}
		if _, dup := declared[p.Name]; dup {
			return fmt.Errorf("route %q: duplicate parameter %q", d.Name, p.Name)
		}
		declared[p.Name] = p.Location
	}

	// Every placeholder needs a declared path parameter and vice versa.
	placeholders := pathPlaceholders(d.Path)
	inTemplate := make(map[string]struct{}, len(placeholders))
	for _, ph := range placeholders {
		inTemplate[ph] = struct{}{}
		if loc, ok := declared[ph]; !ok || loc != InPath {
			return fmt.Errorf("route %q: placeholder {%s} has no declared path parameter", d.Name, ph)
		}
	}
	for _, p := range d.Parameters {
		if p.Location == InPath {
			if _, ok := inTemplate[p.Name]; !ok {
				return fmt.Errorf("route %q: path parameter %q missing from template %q", d.Name, p.Name, d.Path)
			}
		}
	}

	return nil
}

// Query declares a query parameter.
func Query(name string) Parameter {
	return Parameter{Name: name, Location: InQuery, Type: "string"}
}

// Body declares a request body field.
func Body(name string) Parameter {
	return Parameter{Name: name, Location: InBody, Type: "string"}
}

// Typed sets the parameter's value type.
func (p Parameter) Typed(t string) Parameter {
	p.Type = t
	return p
}

// WithPrompt sets the human-readable prompt.
func (p Parameter) WithPrompt(prompt string) Parameter {
	p.Prompt = prompt
	return p
}

// AsRequired marks the parameter required.
func (p Parameter) AsRequired() Parameter {
	p.Required = true
	return p
}

// WithDefault sets the parameter's default value.
func (p Parameter) WithDefault(v any) Parameter {
	p.Default = v
	return p
}

// WithOptions sets the enumerated value list.
func (p Parameter) WithOptions(opts ...string) Parameter {
	p.Options = opts
	return p
}

// WithRenderHint sets the rendering hint carried through to form fields.
func (p Parameter) WithRenderHint(hint string) Parameter {
	p.RenderHint = hint
	return p
}
