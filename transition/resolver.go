// Package transition resolves named routes into Collection+JSON transitions.
//
// A Resolver maps an operation name plus caller-supplied arguments to a
// fully formed link, query, or template: path parameters are substituted
// into the template, remaining arguments become query parameters (safe
// routes) or form fields (unsafe routes), and anything that does not match
// the route's declared contract fails before a partially correct document
// can be emitted.
package transition

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/waypost-dev/waypost/cj"
	"github.com/waypost-dev/waypost/registry"
)

// Resolver resolves operation names against an immutable route registry.
// Resolution is a pure function of the registry and the arguments; a single
// Resolver may be shared by any number of goroutines.
type Resolver struct {
	registry *registry.Registry
	lenient  bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// Lenient makes the resolver drop arguments that match no declared
// parameter instead of failing. The default is strict, which catches caller
// typos early.
func Lenient() Option {
	return func(r *Resolver) { r.lenient = true }
}

// NewResolver returns a Resolver over the given registry.
func NewResolver(reg *registry.Registry, opts ...Option) *Resolver {
	r := &Resolver{registry: reg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the resolver consults.
func (r *Resolver) Registry() *registry.Registry {
	return r.registry
}

// Resolve looks up the named route and binds args to its parameter
// contract. Path parameters are substituted into the path template; for GET
// routes the remaining supplied arguments become an encoded query string,
// ordered by the route's declared parameter order; for other methods they
// become bound form fields. The result is immutable.
func (r *Resolver) Resolve(name string, args map[string]any) (*Transition, error) {
	desc, err := r.registry.Describe(name)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]struct{}, len(desc.Parameters))
	for _, p := range desc.Parameters {
		declared[p.Name] = struct{}{}
	}
	if !r.lenient {
		for key := range args {
			if _, ok := declared[key]; !ok {
				return nil, &UnexpectedArgumentError{Route: name, Param: key}
			}
		}
	}

	href := desc.Path
	var query []string
	var fields []cj.TemplateData

	for _, p := range desc.Parameters {
		value, supplied := lookupArg(args, p.Name)

		switch p.Location {
		case registry.InPath:
			if !supplied {
				return nil, &MissingArgumentError{Route: name, Param: p.Name}
			}
			placeholder := "{" + p.Name + "}"
			href = strings.Replace(href, placeholder, url.PathEscape(formatValue(value)), 1)

		case registry.InQuery:
			if supplied && (desc.Method == http.MethodGet || desc.Method == http.MethodHead) {
				query = append(query, url.QueryEscape(p.Name)+"="+url.QueryEscape(formatValue(value)))
			}
			fields = append(fields, fieldFor(p, value, supplied))

		case registry.InBody:
			fields = append(fields, fieldFor(p, value, supplied))
		}
	}

	if len(query) > 0 {
		href += "?" + strings.Join(query, "&")
	}

	rel := desc.Rel
	if rel == "" {
		rel = desc.Name
	}

	return &Transition{
		Name:   desc.Name,
		Rel:    rel,
		Title:  desc.Title,
		Method: desc.Method,
		Href:   href,
		base:   strings.SplitN(href, "?", 2)[0],
		fields: fields,
	}, nil
}

func lookupArg(args map[string]any, name string) (any, bool) {
	if args == nil {
		return nil, false
	}
	v, ok := args[name]
	return v, ok
}

// fieldFor builds the form field descriptor for a declared parameter,
// carrying the supplied value when present and the declared default
// otherwise.
func fieldFor(p registry.Parameter, value any, supplied bool) cj.TemplateData {
	v := p.Default
	if supplied {
		v = value
	}
	return cj.TemplateData{
		QueryData: cj.QueryData{
			Data: cj.Data{
				Name:       p.Name,
				Value:      v,
				Prompt:     promptFor(p),
				Type:       p.Type,
				InputType:  inputTypeFor(p),
				RenderHint: p.RenderHint,
			},
			Options: p.Options,
		},
		Required: p.Required,
	}
}

func promptFor(p registry.Parameter) string {
	if p.Prompt != "" {
		return p.Prompt
	}
	words := strings.Split(p.Name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// inputTypeFor suggests an HTML input type from the parameter's declared
// value type.
func inputTypeFor(p registry.Parameter) string {
	switch {
	case p.Type == "boolean":
		return "checkbox"
	case p.Type == "integer" || p.Type == "number":
		return "number"
	case len(p.Options) > 0:
		return "select"
	default:
		return "text"
	}
}

// formatValue renders an argument value for URL use.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
