package webui

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// uiPath is where the single page catalog UI is served.
const uiPath = "/"

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	// APIBaseURL is embedded into the page script. Empty means same origin.
	APIBaseURL string
}

// Register renders the UI once for the given API base URL and serves it at /.
func Register(r chi.Router, apiBaseURL string) error {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, pageData{
		APIBaseURL: strings.TrimRight(apiBaseURL, "/"),
	}); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	page := buf.Bytes()

	r.Get(uiPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(page)
	})

	return nil
}
