// Package cj defines the Collection+JSON document model and its canonical
// wire serialization (application/vnd.collection+json).
//
// The types mirror the media type's structure: a single top-level
// "collection" object carrying links, items, queries, an optional write
// template, and an optional error. Optional fields are omitted from output
// rather than emitted as null.
package cj

// Version is the Collection+JSON format version. It is fixed by the media
// type and set on every document this package produces.
const Version = "1.0"

// MediaType is the Collection+JSON media type.
const MediaType = "application/vnd.collection+json"

// Link is a navigable relation to another resource.
type Link struct {
	Rel       string `json:"rel"`
	Href      string `json:"href"`
	Name      string `json:"name,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
	Render    string `json:"render,omitempty"`
	MediaType string `json:"media_type,omitempty"`
	Method    string `json:"method,omitempty"`
}

// Data is a single name/value pair within an item.
type Data struct {
	Name       string `json:"name"`
	Value      any    `json:"value,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
	Type       string `json:"type,omitempty"`
	InputType  string `json:"input_type,omitempty"`
	RenderHint string `json:"render_hint,omitempty"`
}

// QueryData describes one expected parameter of a query. It extends Data
// with an option list for enumerated values.
type QueryData struct {
	Data
	Options []string `json:"options,omitempty"`
}

// TemplateData describes one field of a write template.
type TemplateData struct {
	QueryData
	Required bool `json:"required,omitempty"`
}

// Query is a parameterized safe (GET) transition, rendered as a search form
// by HTML-capable clients.
type Query struct {
	Rel    string      `json:"rel"`
	Href   string      `json:"href"`
	Name   string      `json:"name,omitempty"`
	Prompt string      `json:"prompt,omitempty"`
	Data   []QueryData `json:"data,omitempty"`
}

// Item is one resource representation within a collection.
type Item struct {
	Href  string `json:"href"`
	Rel   string `json:"rel,omitempty"`
	Data  []Data `json:"data,omitempty"`
	Links []Link `json:"links,omitempty"`
}

// Template is an unsafe (non-GET) transition: the fields a client must fill
// in to create or update an item.
type Template struct {
	Name   string         `json:"name,omitempty"`
	Href   string         `json:"href,omitempty"`
	Rel    string         `json:"rel,omitempty"`
	Prompt string         `json:"prompt,omitempty"`
	Method string         `json:"method,omitempty"`
	Data   []TemplateData `json:"data,omitempty"`
}

// Error reports a failure in place of collection content. A collection
// carrying an error must not carry links or items.
type Error struct {
	Title   string `json:"title"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Collection is the top-level hypermedia document body.
type Collection struct {
	Version  string    `json:"version"`
	Href     string    `json:"href,omitempty"`
	Title    string    `json:"title,omitempty"`
	Links    []Link    `json:"links,omitempty"`
	Items    []Item    `json:"items,omitempty"`
	Queries  []Query   `json:"queries,omitempty"`
	Template *Template `json:"template,omitempty"`
	Error    *Error    `json:"error,omitempty"`
}

// CollectionJSON is the wire envelope: the document serializes under a
// single top-level "collection" key.
type CollectionJSON struct {
	Collection Collection `json:"collection"`
}

// NewCollection returns a document with the version set and the given title
// and href.
func NewCollection(title, href string) *CollectionJSON {
	return &CollectionJSON{
		Collection: Collection{
			Version: Version,
			Href:    href,
			Title:   title,
		},
	}
}

// FindLink returns the first link with the given rel, or nil.
func (c *Collection) FindLink(rel string) *Link {
	for i := range c.Links {
		if c.Links[i].Rel == rel {
			return &c.Links[i]
		}
	}
	return nil
}

// FindItem returns the first item with the given href, or nil.
func (c *Collection) FindItem(href string) *Item {
	for i := range c.Items {
		if c.Items[i].Href == href {
			return &c.Items[i]
		}
	}
	return nil
}

// FindLink returns the first item link with the given rel, or nil.
func (i *Item) FindLink(rel string) *Link {
	for j := range i.Links {
		if i.Links[j].Rel == rel {
			return &i.Links[j]
		}
	}
	return nil
}

// Value returns the value of the named data entry within an item.
func (i *Item) Value(name string) (any, bool) {
	for _, d := range i.Data {
		if d.Name == name {
			return d.Value, true
		}
	}
	return nil, false
}
