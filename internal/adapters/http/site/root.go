// Package site serves the embedded search UI.
package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register attaches the embedded UI at the root path. Explicit routes
// registered elsewhere keep precedence over the wildcard.
func Register(r chi.Router) {
	if r == nil {
		panic("router is nil")
	}

	files := http.FileServer(FS())
	r.Handle("/*", files)
}
