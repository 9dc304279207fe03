package hypermedia

import (
	"mime"
	"net/http"
	"strings"

	"github.com/waypost-dev/waypost/cj"
)

// Accepts reports whether the request asks for Collection+JSON. Bare
// "application/json" and wildcard accepts also match, so generic clients
// get the hypermedia body.
func Accepts(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case cj.MediaType, "application/json", "application/*", "*/*":
			return true
		}
	}
	return false
}

// AcceptsHTML reports whether the request prefers an HTML rendering.
func AcceptsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == "text/html" || mediaType == "application/xhtml+xml" {
			return true
		}
	}
	return false
}

// Respond writes the document with the Collection+JSON media type.
// Marshaling happens before anything touches the ResponseWriter, so a
// document that violates the model's invariants produces an error and an
// untouched response instead of a partial write.
func Respond(w http.ResponseWriter, status int, doc *cj.CollectionJSON) error {
	data, err := cj.Marshal(doc)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", cj.MediaType)
	w.WriteHeader(status)
	_, err = w.Write(data)
	return err
}

// RespondError writes an error-variant document with the given status.
func RespondError(w http.ResponseWriter, status int, title, message string) error {
	return Respond(w, status, ErrorCollection(title, status, message))
}
