package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/waypost-dev/waypost/registry"
)

// routeFile is the on-disk route table format accepted by the routes and
// resolve commands.
type routeFile struct {
	Routes []routeEntry `json:"routes"`
}

type routeEntry struct {
	Name       string       `json:"name"`
	Method     string       `json:"method"`
	Path       string       `json:"path"`
	Rel        string       `json:"rel,omitempty"`
	Title      string       `json:"title,omitempty"`
	Parameters []paramEntry `json:"parameters,omitempty"`
}

type paramEntry struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Type       string   `json:"type,omitempty"`
	Required   bool     `json:"required,omitempty"`
	Prompt     string   `json:"prompt,omitempty"`
	Default    any      `json:"default,omitempty"`
	Options    []string `json:"options,omitempty"`
	RenderHint string   `json:"render_hint,omitempty"`
}

func parseLocation(s string) (registry.Location, error) {
	switch s {
	case "path":
		return registry.InPath, nil
	case "query", "":
		return registry.InQuery, nil
	case "body":
		return registry.InBody, nil
	default:
		return 0, fmt.Errorf("unknown parameter location %q", s)
	}
}

// loadRegistry reads a JSON route table and builds a registry from it.
func loadRegistry(path string) (*registry.Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route table: %w", err)
	}

	var file routeFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing route table %s: %w", path, err)
	}

	b := registry.NewBuilder()
	for _, r := range file.Routes {
		var params []registry.Parameter
		explicitPath := false
		for _, p := range r.Parameters {
			loc, err := parseLocation(p.Location)
			if err != nil {
				return nil, fmt.Errorf("route %s: %w", r.Name, err)
			}
			if loc == registry.InPath {
				explicitPath = true
			}
			typ := p.Type
			if typ == "" {
				typ = "string"
			}
			params = append(params, registry.Parameter{
				Name:       p.Name,
				Location:   loc,
				Type:       typ,
				Required:   p.Required,
				Prompt:     p.Prompt,
				Default:    p.Default,
				Options:    p.Options,
				RenderHint: p.RenderHint,
			})
		}

		if explicitPath {
			// The file spells out its own path parameters; take it as is.
			d := registry.RouteDescriptor{
				Name:       r.Name,
				Method:     r.Method,
				Path:       r.Path,
				Rel:        r.Rel,
				Title:      r.Title,
				Parameters: params,
			}
			b.Add(d)
			continue
		}

		b.Route(r.Name, r.Method, r.Path, params...)
		if r.Rel != "" || r.Title != "" {
			b.Annotate(r.Name, r.Rel, r.Title)
		}
	}
	return b.Build()
}
