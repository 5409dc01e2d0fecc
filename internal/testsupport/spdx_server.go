package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"spdxdiff/internal/spdx"
)

const (
	catalogPath = "/json/licenses.json"
	textPrefix  = "/text/"
)

// SPDXServer fakes the license-list-data endpoints: a JSON catalog and one
// plain-text body per license. Requests are counted per path.
type SPDXServer struct {
	server *httptest.Server

	mu            sync.Mutex
	licenses      []spdx.License
	texts         map[string]string
	textStatus    map[string]int
	catalogStatus int
	hits          map[string]int
}

// NewSPDXServer starts a fake server listing licenses in the given order.
// Licenses without an entry in texts answer 404.
func NewSPDXServer(t testing.TB, licenses []spdx.License, texts map[string]string) *SPDXServer {
	t.Helper()

	s := &SPDXServer{
		licenses:      licenses,
		texts:         make(map[string]string, len(texts)),
		textStatus:    make(map[string]int),
		catalogStatus: http.StatusOK,
		hits:          make(map[string]int),
	}
	for id, text := range texts {
		s.texts[id] = text
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.server.Close)
	return s
}

// Licenses builds catalog entries named after their identifiers.
func Licenses(ids ...string) []spdx.License {
	out := make([]spdx.License, 0, len(ids))
	for _, id := range ids {
		out = append(out, spdx.License{ID: id, Name: id + " License"})
	}
	return out
}

// CatalogURL returns the catalog endpoint.
func (s *SPDXServer) CatalogURL() string {
	return s.server.URL + catalogPath
}

// TextBaseURL returns the base URL that license texts live under.
func (s *SPDXServer) TextBaseURL() string {
	return s.server.URL + strings.TrimSuffix(textPrefix, "/")
}

// Client returns an HTTP client wired to the server.
func (s *SPDXServer) Client() *http.Client {
	return s.server.Client()
}

// SetCatalogStatus makes the catalog endpoint answer with code.
func (s *SPDXServer) SetCatalogStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogStatus = code
}

// SetTextStatus makes the text endpoint for id answer with code.
func (s *SPDXServer) SetTextStatus(id string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textStatus[id] = code
}

// SetText replaces the body served for id.
func (s *SPDXServer) SetText(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[id] = text
}

// TextHits returns how many times the text for id was requested.
func (s *SPDXServer) TextHits(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[textPrefix+id+".txt"]
}

// CatalogHits returns how many times the catalog was requested.
func (s *SPDXServer) CatalogHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[catalogPath]
}

func (s *SPDXServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hits[r.URL.Path]++

	switch {
	case r.URL.Path == catalogPath:
		if s.catalogStatus != http.StatusOK {
			w.WriteHeader(s.catalogStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"licenseListVersion": "test",
			"licenses":           s.licenses,
		})
	case strings.HasPrefix(r.URL.Path, textPrefix) && strings.HasSuffix(r.URL.Path, ".txt"):
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, textPrefix), ".txt")
		if code, ok := s.textStatus[id]; ok && code != http.StatusOK {
			w.WriteHeader(code)
			return
		}
		text, ok := s.texts[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(text))
	default:
		http.NotFound(w, r)
	}
}
