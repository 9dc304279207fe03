package hypermedia

import (
	"html/template"
	"io"
	"net/http"

	"github.com/waypost-dev/waypost/cj"
)

// htmlDocument renders a Collection+JSON document as a plain HTML page:
// links as a list, items with their data, queries as GET forms, and the
// write template as a method-appropriate form.
var htmlDocument = template.Must(template.New("collection").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Collection.Title}}</title></head>
<body>
<h1>{{.Collection.Title}}</h1>
{{- with .Collection.Error}}
<div class="error">
<h2>{{.Title}} ({{.Code}})</h2>
<p>{{.Message}}</p>
{{- if .Details}}<p>{{.Details}}</p>{{end}}
</div>
{{- end}}
{{- with .Collection.Links}}
<h2>Links</h2>
<ul>
{{- range .}}
<li><a href="{{.Href}}" rel="{{.Rel}}">{{if .Prompt}}{{.Prompt}}{{else}}{{.Rel}}{{end}}</a></li>
{{- end}}
</ul>
{{- end}}
{{- with .Collection.Items}}
<h2>Items</h2>
<ul>
{{- range .}}
<li><a href="{{.Href}}">{{.Href}}</a>
<ul>
{{- range .Data}}
<li>{{if .Prompt}}{{.Prompt}}{{else}}{{.Name}}{{end}}: {{.Value}}</li>
{{- end}}
</ul>
</li>
{{- end}}
</ul>
{{- end}}
{{- range .Collection.Queries}}
<h2>{{if .Prompt}}{{.Prompt}}{{else}}Search{{end}}</h2>
<form action="{{.Href}}" method="GET">
{{- range .Data}}
<label>{{if .Prompt}}{{.Prompt}}{{else}}{{.Name}}{{end}}</label>
{{- if .Options}}
<select name="{{.Name}}">
{{- $value := .Value}}
{{- range .Options}}
<option value="{{.}}"{{if eq (printf "%v" $value) .}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
{{- else}}
<input type="{{if .InputType}}{{.InputType}}{{else}}text{{end}}" name="{{.Name}}"{{with .Value}} value="{{.}}"{{end}}>
{{- end}}
<br>
{{- end}}
<button type="submit">Search</button>
</form>
{{- end}}
{{- with .Collection.Template}}
<h2>{{if .Prompt}}{{.Prompt}}{{else}}Create New Item{{end}}</h2>
<form action="{{.Href}}" method="{{if .Method}}{{.Method}}{{else}}POST{{end}}">
{{- range .Data}}
<label>{{if .Prompt}}{{.Prompt}}{{else}}{{.Name}}{{end}}</label>
{{- if .Options}}
<select name="{{.Name}}"{{if .Required}} required{{end}}>
{{- $value := .Value}}
{{- range .Options}}
<option value="{{.}}"{{if eq (printf "%v" $value) .}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
{{- else}}
<input type="{{if .InputType}}{{.InputType}}{{else}}text{{end}}" name="{{.Name}}"{{with .Value}} value="{{.}}"{{end}}{{if .Required}} required{{end}}>
{{- end}}
<br>
{{- end}}
<button type="submit">Submit</button>
</form>
{{- end}}
</body>
</html>
`))

// RenderHTML writes the document as HTML. The document is not validated
// beyond what the model guarantees; renderers consume the same value the
// JSON serializer does.
func RenderHTML(w io.Writer, doc *cj.CollectionJSON) error {
	return htmlDocument.Execute(w, doc)
}

// RespondHTML writes the HTML rendering with a text/html content type.
func RespondHTML(w http.ResponseWriter, status int, doc *cj.CollectionJSON) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return RenderHTML(w, doc)
}
