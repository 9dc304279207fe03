package transition

import "github.com/waypost-dev/waypost/cj"

// Transition is a resolved route: the href with path parameters substituted
// (and, for safe routes, the supplied query string), plus the field
// descriptors a client would need to drive the route as a form. Convert it
// to the Collection+JSON representation that fits the response being built.
type Transition struct {
	Name   string
	Rel    string
	Title  string
	Method string
	Href   string

	base   string // href without the query string
	fields []cj.TemplateData
}

// IsSafe reports whether the transition targets a GET route, i.e. whether
// it belongs in links/queries rather than the template.
func (t *Transition) IsSafe() bool {
	return t.Method == "GET" || t.Method == "HEAD"
}

// Fields returns the transition's form field descriptors in the route's
// declared parameter order.
func (t *Transition) Fields() []cj.TemplateData {
	out := make([]cj.TemplateData, len(t.fields))
	copy(out, t.fields)
	return out
}

// Link converts the transition to a link. An empty rel keeps the
// transition's own relation.
func (t *Transition) Link(rel string) cj.Link {
	if rel == "" {
		rel = t.Rel
	}
	l := cj.Link{
		Rel:    rel,
		Href:   t.Href,
		Prompt: t.Title,
	}
	if !t.IsSafe() {
		l.Method = t.Method
	}
	return l
}

// Query converts the transition to a query form: the base href without any
// bound query string, plus one data entry per declared query parameter.
func (t *Transition) Query() cj.Query {
	data := make([]cj.QueryData, 0, len(t.fields))
	for _, f := range t.fields {
		data = append(data, f.QueryData)
	}
	return cj.Query{
		Rel:    t.Rel,
		Href:   t.base,
		Name:   t.Name,
		Prompt: t.Title,
		Data:   data,
	}
}

// Template converts the transition to a write template. Values in defaults
// override the fields' bound or declared-default values by name.
func (t *Transition) Template(defaults map[string]any) cj.Template {
	data := make([]cj.TemplateData, len(t.fields))
	copy(data, t.fields)
	for i := range data {
		if v, ok := defaults[data[i].Name]; ok && v != nil {
			data[i].Value = v
		}
	}
	return cj.Template{
		Name:   t.Name,
		Href:   t.base,
		Rel:    t.Rel,
		Prompt: t.Title,
		Method: t.Method,
		Data:   data,
	}
}
