package registry

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(w http.ResponseWriter, r *http.Request) {}

func TestFromChiDerivesRoutes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/", noopHandler)
	r.Get("/orders", noopHandler)
	r.Get("/orders/{id}", noopHandler)
	r.Post("/orders", noopHandler)

	reg, err := FromChi(r)
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())

	d, err := reg.Describe("get_orders_id")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, d.Method)
	assert.Equal(t, "/orders/{id}", d.Path)
	require.Len(t, d.Parameters, 1)
	assert.Equal(t, "id", d.Parameters[0].Name)
	assert.Equal(t, InPath, d.Parameters[0].Location)

	root, err := reg.Describe("get_root")
	require.NoError(t, err)
	assert.Equal(t, "/", root.Path)
}

func TestFromChiWithMountedSubrouter(t *testing.T) {
	api := chi.NewRouter()
	api.Get("/workflows/{id}", noopHandler)

	r := chi.NewRouter()
	r.Mount("/api", api)

	reg, err := FromChi(r)
	require.NoError(t, err)

	d, err := reg.Describe("get_api_workflows_id")
	require.NoError(t, err)
	assert.Equal(t, "/api/workflows/{id}", d.Path)
}

func TestFromChiAnnotations(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/orders", noopHandler)
	r.Post("/orders", noopHandler)

	reg, err := FromChi(r,
		WithAnnotation(http.MethodGet, "/orders", func(d *RouteDescriptor) {
			d.Name = "list_orders"
			d.Title = "Orders"
			d.Parameters = append(d.Parameters, Query("status").WithOptions("pending", "shipped"))
		}),
		WithAnnotation(http.MethodPost, "/orders", func(d *RouteDescriptor) {
			d.Name = "create_order"
			d.Parameters = append(d.Parameters, Body("sku").AsRequired())
		}),
	)
	require.NoError(t, err)

	list, err := reg.Describe("list_orders")
	require.NoError(t, err)
	assert.Equal(t, "Orders", list.Title)
	require.Len(t, list.QueryParameters(), 1)
	assert.Equal(t, []string{"pending", "shipped"}, list.QueryParameters()[0].Options)

	create, err := reg.Describe("create_order")
	require.NoError(t, err)
	require.Len(t, create.BodyParameters(), 1)
	assert.True(t, create.BodyParameters()[0].Required)
}

func TestFromChiCustomNamer(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/orders", noopHandler)

	reg, err := FromChi(r, WithNamer(func(method, pattern string) string {
		return method + ":" + pattern
	}))
	require.NoError(t, err)

	_, err = reg.Describe("GET:/orders")
	assert.NoError(t, err)
}

func TestDefaultNamer(t *testing.T) {
	tests := []struct {
		method  string
		pattern string
		want    string
	}{
		{http.MethodGet, "/", "get_root"},
		{http.MethodGet, "/orders", "get_orders"},
		{http.MethodGet, "/orders/{id}", "get_orders_id"},
		{http.MethodGet, "/orders/{id:[0-9]+}", "get_orders_id"},
		{http.MethodPost, "/api/workflows/{id}/tasks", "post_api_workflows_id_tasks"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultNamer(tt.method, tt.pattern), tt.pattern)
	}
}
