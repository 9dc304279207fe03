package registry

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// NamerFunc derives an operation name from a method and route pattern.
type NamerFunc func(method, pattern string) string

// DefaultNamer produces snake_case names from the method and the pattern's
// segments, placeholder names included so sibling routes stay distinct:
// GET /workflows/{id}/tasks -> get_workflows_id_tasks.
func DefaultNamer(method, pattern string) string {
	parts := []string{strings.ToLower(method)}
	for _, seg := range strings.Split(pattern, "/") {
		if seg == "" || seg == "*" {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			seg = strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
			if i := strings.Index(seg, ":"); i >= 0 {
				seg = seg[:i]
			}
		}
		parts = append(parts, strings.ToLower(seg))
	}
	if len(parts) == 1 {
		parts = append(parts, "root")
	}
	return strings.Join(parts, "_")
}

type chiConfig struct {
	namer       NamerFunc
	annotations map[string]func(*RouteDescriptor)
}

// ChiOption configures FromChi.
type ChiOption func(*chiConfig)

// WithNamer overrides the operation naming function.
func WithNamer(fn NamerFunc) ChiOption {
	return func(c *chiConfig) { c.namer = fn }
}

// WithAnnotation registers a hook applied to the descriptor derived for the
// given method and pattern. Use it to set the name, rel, title, and the
// query/body parameters the walk cannot see.
func WithAnnotation(method, pattern string, fn func(*RouteDescriptor)) ChiOption {
	return func(c *chiConfig) {
		c.annotations[annotationKey(method, pattern)] = fn
	}
}

func annotationKey(method, pattern string) string {
	return strings.ToUpper(method) + " " + normalizePattern(pattern)
}

// normalizePattern strips the trailing slash chi appends to mounted
// patterns. The root pattern stays "/".
func normalizePattern(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "/*/", "/")
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}
	if pattern == "" {
		pattern = "/"
	}
	return pattern
}

// FromChi builds a registry by walking a chi router's registered routes.
// Path parameters are derived from the patterns; names default to
// DefaultNamer output. Call this once at startup, after all routes are
// mounted, and before serving begins.
func FromChi(routes chi.Routes, opts ...ChiOption) (*Registry, error) {
	cfg := &chiConfig{
		namer:       DefaultNamer,
		annotations: make(map[string]func(*RouteDescriptor)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	b := NewBuilder()
	walkErr := chi.Walk(routes, func(method, pattern string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		pattern = normalizePattern(pattern)
		d := RouteDescriptor{
			Name:   cfg.namer(method, pattern),
			Method: strings.ToUpper(method),
			Path:   pattern,
		}
		for _, ph := range pathPlaceholders(pattern) {
			d.Parameters = append(d.Parameters, Parameter{
				Name:     ph,
				Location: InPath,
				Type:     "string",
				Required: true,
			})
		}
		if fn, ok := cfg.annotations[annotationKey(method, pattern)]; ok {
			fn(&d)
		}
		b.Add(d)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking chi routes: %w", walkErr)
	}

	return b.Build()
}
