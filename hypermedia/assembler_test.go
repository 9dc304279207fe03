package hypermedia

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypost-dev/waypost/cj"
	"github.com/waypost-dev/waypost/registry"
	"github.com/waypost-dev/waypost/transition"
)

func apiRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.NewBuilder().
		Route("root", http.MethodGet, "/").
		Route("list_orders", http.MethodGet, "/orders",
			registry.Query("status").WithOptions("pending", "shipped"),
		).
		Route("get_order", http.MethodGet, "/orders/{id}").
		Route("create_order", http.MethodPost, "/orders",
			registry.Body("sku").AsRequired(),
			registry.Body("quantity").Typed("integer").WithDefault(1),
		).
		Build()
	require.NoError(t, err)
	return reg
}

func TestCollectionRootScenario(t *testing.T) {
	h := New(apiRegistry(t))

	doc, err := h.Collection("My API", "", WithLink("root"))
	require.NoError(t, err)

	data, err := cj.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"collection":{"version":"1.0","href":"/","title":"My API","links":[{"rel":"self","href":"/"}]}}`,
		string(data))
}

func TestCollectionHrefFromFirstLink(t *testing.T) {
	h := New(apiRegistry(t))

	doc, err := h.Collection("Order", "",
		WithLinkArgs("get_order", map[string]any{"id": 5}),
		WithLink("root"),
	)
	require.NoError(t, err)

	assert.Equal(t, "/orders/5", doc.Collection.Href)
	require.Len(t, doc.Collection.Links, 2)
	assert.Equal(t, "self", doc.Collection.Links[0].Rel)
	assert.Equal(t, "root", doc.Collection.Links[1].Rel)
}

func TestCollectionExplicitRelWins(t *testing.T) {
	h := New(apiRegistry(t))

	doc, err := h.Collection("My API", "/", WithLink("root", "index"))
	require.NoError(t, err)
	assert.Equal(t, "index", doc.Collection.Links[0].Rel)
}

func TestCollectionFailsFast(t *testing.T) {
	h := New(apiRegistry(t))

	_, err := h.Collection("My API", "/",
		WithLink("root"),
		WithLink("missing_route"),
	)
	require.Error(t, err)

	var unknownErr *registry.UnknownRouteError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "missing_route", unknownErr.Name)
}

func TestCollectionPropagatesResolverErrors(t *testing.T) {
	h := New(apiRegistry(t))

	_, err := h.Collection("Order", "/", WithLink("get_order"))
	var missingErr *transition.MissingArgumentError
	require.ErrorAs(t, err, &missingErr)

	_, err = h.Collection("Orders", "/", WithQueryArgs("list_orders", map[string]any{"bogus": 1}))
	var unexpectedErr *transition.UnexpectedArgumentError
	require.ErrorAs(t, err, &unexpectedErr)
}

func TestCollectionWithQueriesAndTemplate(t *testing.T) {
	h := New(apiRegistry(t))

	doc, err := h.Collection("Orders", "/orders",
		WithLink("root"),
		WithQuery("list_orders", "search"),
		WithTemplateDefaults("create_order", nil, map[string]any{"sku": "ABC-1"}),
	)
	require.NoError(t, err)

	require.Len(t, doc.Collection.Queries, 1)
	q := doc.Collection.Queries[0]
	assert.Equal(t, "search", q.Rel)
	assert.Equal(t, "/orders", q.Href)
	require.Len(t, q.Data, 1)
	assert.Equal(t, "status", q.Data[0].Name)

	tmpl := doc.Collection.Template
	require.NotNil(t, tmpl)
	assert.Equal(t, "create_order", tmpl.Name)
	assert.Equal(t, http.MethodPost, tmpl.Method)
	require.Len(t, tmpl.Data, 2)
	assert.Equal(t, "ABC-1", tmpl.Data[0].Value)
	assert.Equal(t, 1, tmpl.Data[1].Value)
}

func TestCollectionWithItems(t *testing.T) {
	h := New(apiRegistry(t))

	doc, err := h.Collection("Orders", "/orders",
		WithItems(
			cj.Item{Href: "/orders/1", Data: []cj.Data{{Name: "status", Value: "pending"}}},
			cj.Item{Href: "/orders/2"},
		),
		WithItem(cj.Item{Href: "/orders/3"}),
	)
	require.NoError(t, err)
	require.Len(t, doc.Collection.Items, 3)
	assert.Equal(t, "/orders/3", doc.Collection.Items[2].Href)
}

func TestCollectionRawModelBypass(t *testing.T) {
	h := New(apiRegistry(t))

	doc, err := h.Collection("Mixed", "/x",
		WithRawLink(cj.Link{Rel: "external", Href: "https://example.com/docs"}),
		WithRawQuery(cj.Query{Rel: "search", Href: "/x/search"}),
	)
	require.NoError(t, err)
	assert.Equal(t, "external", doc.Collection.Links[0].Rel)
	assert.Equal(t, "/x/search", doc.Collection.Queries[0].Href)
}

func TestCollectionRejectsDuplicateItemHrefs(t *testing.T) {
	h := New(apiRegistry(t))

	_, err := h.Collection("Orders", "/orders",
		WithItems(cj.Item{Href: "/orders/1"}, cj.Item{Href: "/orders/1"}),
	)
	var serErr *cj.SerializationError
	require.ErrorAs(t, err, &serErr)
}

func TestCollectionLenientResolver(t *testing.T) {
	h := New(apiRegistry(t), transition.Lenient())

	doc, err := h.Collection("Order", "",
		WithLinkArgs("get_order", map[string]any{"id": 5, "typo": true}),
	)
	require.NoError(t, err)
	assert.Equal(t, "/orders/5", doc.Collection.Href)
}

func TestErrorCollection(t *testing.T) {
	doc := ErrorCollection("Not Found", 404, "no such order")

	require.NotNil(t, doc.Collection.Error)
	assert.Equal(t, 404, doc.Collection.Error.Code)
	assert.Empty(t, doc.Collection.Links)
	assert.Empty(t, doc.Collection.Items)
	require.NoError(t, doc.Validate())

	data, err := cj.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"links"`)
}
