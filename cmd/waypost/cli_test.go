package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waypost-dev/waypost/cj"
)

const testRouteTable = `{
  "routes": [
    {"name": "root", "method": "GET", "path": "/", "rel": "self", "title": "API Root"},
    {"name": "get_order", "method": "GET", "path": "/orders/{id}", "rel": "item"},
    {
      "name": "list_orders", "method": "GET", "path": "/orders",
      "parameters": [
        {"name": "status", "location": "query", "options": ["pending", "shipped"]},
        {"name": "page", "location": "query", "type": "integer", "default": 1}
      ]
    },
    {
      "name": "create_order", "method": "POST", "path": "/orders",
      "parameters": [
        {"name": "sku", "location": "body", "required": true},
        {"name": "quantity", "location": "body", "type": "integer", "default": 1}
      ]
    }
  ]
}`

func writeRouteTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	reg, err := loadRegistry(writeRouteTable(t, testRouteTable))
	require.NoError(t, err)
	assert.Equal(t, 4, reg.Len())

	d, err := reg.Describe("get_order")
	require.NoError(t, err)
	assert.Equal(t, "item", d.Rel)
	require.Len(t, d.Parameters, 1)
	assert.Equal(t, "id", d.Parameters[0].Name)

	d, err = reg.Describe("list_orders")
	require.NoError(t, err)
	assert.Len(t, d.QueryParameters(), 2)
}

func TestLoadRegistryErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "bad json",
			content: `{not json`,
		},
		{
			name: "bad location",
			content: `{"routes": [{"name": "x", "method": "GET", "path": "/",
				"parameters": [{"name": "p", "location": "header"}]}]}`,
		},
		{
			name: "duplicate name",
			content: `{"routes": [
				{"name": "x", "method": "GET", "path": "/a"},
				{"name": "x", "method": "GET", "path": "/b"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadRegistry(writeRouteTable(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestRoutesCommand(t *testing.T) {
	path := writeRouteTable(t, testRouteTable)

	var out bytes.Buffer
	routesCmd.SetOut(&out)
	routesNoColor = true
	defer func() { routesNoColor = false }()

	require.NoError(t, routesCmd.RunE(routesCmd, []string{path}))

	assert.Contains(t, out.String(), "get_order")
	assert.Contains(t, out.String(), "/orders/{id}")
	assert.Contains(t, out.String(), "status(query)")
}

func TestResolveCommandLink(t *testing.T) {
	path := writeRouteTable(t, testRouteTable)

	var out bytes.Buffer
	resolveCmd.SetOut(&out)
	resolveArgs = []string{"id=42"}
	defer func() { resolveArgs = nil }()

	require.NoError(t, resolveCmd.RunE(resolveCmd, []string{path, "get_order"}))

	var link cj.Link
	require.NoError(t, json.Unmarshal(out.Bytes(), &link))
	assert.Equal(t, "/orders/42", link.Href)
	assert.Equal(t, "item", link.Rel)
}

func TestResolveCommandTemplate(t *testing.T) {
	path := writeRouteTable(t, testRouteTable)

	var out bytes.Buffer
	resolveCmd.SetOut(&out)

	require.NoError(t, resolveCmd.RunE(resolveCmd, []string{path, "create_order"}))

	var tpl cj.Template
	require.NoError(t, json.Unmarshal(out.Bytes(), &tpl))
	assert.Equal(t, "/orders", tpl.Href)
	assert.Equal(t, "POST", tpl.Method)
	require.Len(t, tpl.Data, 2)
	assert.Equal(t, "sku", tpl.Data[0].Name)
	assert.True(t, tpl.Data[0].Required)
}

func TestResolveCommandMissingArgument(t *testing.T) {
	path := writeRouteTable(t, testRouteTable)
	err := resolveCmd.RunE(resolveCmd, []string{path, "get_order"})
	assert.Error(t, err)
}
