package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"playerhub/internal/application/state"
)

//go:embed templates/*.html
var templateFS embed.FS

// mdRenderer is a goldmark instance configured for safe HTML output. Raw
// HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var siteTemplate = template.Must(template.New("site.html").Funcs(template.FuncMap{
	"renderMarkdown": func(md string) template.HTML {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	},
}).ParseFS(templateFS, "templates/site.html"))

// handleSite renders the public portfolio page from the shared state.
func handleSite(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		methodNotAllowed(w)
		return
	}

	var snap state.Snapshot
	if siteState != nil {
		snap = siteState.Snapshot()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := siteTemplate.Execute(w, snap); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "playerhub server is running",
	})
}

// handlePerf serves the recorded request/query timings.
func handlePerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w)
		return
	}
	if perfCollector == nil {
		writeJSON(w, http.StatusOK, emptyObject)
		return
	}
	writeJSON(w, http.StatusOK, perfCollector.Snapshot(time.Time{}, 10))
}
