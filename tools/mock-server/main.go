// Package main implements a mock spec source site and a mock
// OpenAI-compatible completion endpoint for local development. Product
// pages come from HTML fixtures; the completion endpoint echoes the record
// embedded in the reconciliation prompt back as its reply.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// promptInputMarker precedes the JSON record in a reconciliation prompt.
const promptInputMarker = "Input:\n"

// phone is one fixture product page.
type phone struct {
	Slug string
	Name string
	Page []byte
}

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureDir := flag.String("fixtures", "tools/mock-server/testdata/phones", "directory of product page fixtures")
	broken := flag.String("layout-change", "", "comma-separated slugs served without a spec table")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	catalog, err := loadCatalog(*fixtureDir)
	if err != nil {
		logger.Error("failed to load fixtures", "dir", *fixtureDir, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixtures", "phones", len(catalog))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock spec source", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, catalog, splitList(*broken))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, catalog []phone, broken []string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /results.php3", resultsHandler(logger, catalog))
	mux.HandleFunc("GET /{page}", productHandler(logger, catalog, broken))
	mux.HandleFunc("POST /v1/chat/completions", completionHandler(logger))
	return mux
}

// loadCatalog reads every *.html fixture in dir. The page URL is the file
// name with .php in place of .html.
func loadCatalog(dir string) ([]phone, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("listing fixtures: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no fixtures in %s", dir)
	}
	slices.Sort(paths)

	catalog := make([]phone, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p) //nolint:gosec // fixture path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading fixture: %w", err)
		}
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("parsing fixture %s: %w", p, err)
		}
		name := strings.TrimSpace(doc.Find("h1").First().Text())
		if name == "" {
			return nil, fmt.Errorf("fixture %s has no h1", p)
		}
		catalog = append(catalog, phone{
			Slug: strings.TrimSuffix(filepath.Base(p), ".html"),
			Name: name,
			Page: data,
		})
	}
	return catalog, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// resultsHandler renders a results page with navigation noise around the
// product links whose names contain every query word.
func resultsHandler(logger *slog.Logger, catalog []phone) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		words := strings.Fields(strings.ToLower(r.URL.Query().Get("sName")))

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html><body>` +
			`<div id="nav"><a href="/news.php">News</a> <a href="/reviews.php">Reviews</a></div>` +
			`<div class="makers"><ul>`)
		matched := 0
		for _, p := range catalog {
			if !matchesAll(strings.ToLower(p.Name), words) {
				continue
			}
			matched++
			fmt.Fprintf(&b, `<li><a href="%s.php"><span>%s</span></a></li>`,
				p.Slug, html.EscapeString(p.Name))
		}
		b.WriteString(`</ul></div></body></html>`)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write([]byte(b.String()))
		logger.Info("search", "query", words, "matched", matched)
	}
}

func matchesAll(name string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !strings.Contains(name, w) {
			return false
		}
	}
	return true
}

func productHandler(logger *slog.Logger, catalog []phone, broken []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := r.PathValue("page")
		slug, ok := strings.CutSuffix(page, ".php")
		if !ok {
			http.NotFound(w, r)
			return
		}

		i := slices.IndexFunc(catalog, func(p phone) bool { return p.Slug == slug })
		if i < 0 {
			http.NotFound(w, r)
			return
		}

		body := catalog[i].Page
		if slices.Contains(broken, slug) {
			body = []byte(`<!DOCTYPE html><html><body><h1>` + html.EscapeString(catalog[i].Name) +
				`</h1><div id="specs-list"></div></body></html>`)
			logger.Warn("serving layout change", "slug", slug)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		w.Write(body)
	}
}

// completionHandler answers chat completions by echoing the record that
// follows the prompt's input marker.
func completionHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": map[string]string{"message": "invalid chat request", "type": "invalid_request_error"},
			})
			return
		}

		prompt := req.Messages[len(req.Messages)-1].Content
		content := "{}"
		if _, record, ok := strings.Cut(prompt, promptInputMarker); ok {
			content = strings.TrimSpace(record)
		}

		model := req.Model
		if model == "" {
			model = "mock-model"
		}
		promptTokens := len(prompt) / 4
		completionTokens := len(content) / 4

		writeJSON(w, http.StatusOK, map[string]any{
			"model": model,
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
			},
			"usage": map[string]int{
				"prompt_tokens":     promptTokens,
				"completion_tokens": completionTokens,
				"total_tokens":      promptTokens + completionTokens,
			},
		})
		logger.Info("completion", "model", model, "prompt_chars", len(prompt))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
