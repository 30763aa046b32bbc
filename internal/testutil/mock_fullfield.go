// Package testutil provides testing utilities for the Fullfield client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// MockFullfield is a configurable mock Fullfield API server for testing.
type MockFullfield struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount   int
	LastAuthHeader string
}

// NewMockFullfield creates a new mock Fullfield server.
func NewMockFullfield() *MockFullfield {
	mock := &MockFullfield{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastAuthHeader = r.Header.Get("Authorization")
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"meta":{"current_page":1,"last_page":1}}`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockFullfield) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockFullfield) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockFullfield) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastAuthHeader = ""
}

// Requests returns the number of requests served so far.
func (m *MockFullfield) Requests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// SetHandler sets a custom handler for a specific path.
func (m *MockFullfield) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetStatus makes a path answer with a bare status code.
func (m *MockFullfield) SetStatus(path string, statusCode int) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
	})
}

// ServePaginated makes a path serve rows split into pages of perPage, in the
// flat envelope shape {"data":[...],"meta":{...}}.
func (m *MockFullfield) ServePaginated(path string, rows []any, perPage int) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		writePage(w, r, rows, perPage, false)
	})
}

// ServeBoxscore is ServePaginated with the double-wrapped envelope shape
// {"data":{"data":[...],"meta":{...}}} that boxscore endpoints use.
func (m *MockFullfield) ServeBoxscore(path string, rows []any, perPage int) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		writePage(w, r, rows, perPage, true)
	})
}

func writePage(w http.ResponseWriter, r *http.Request, rows []any, perPage int, doubleWrap bool) {
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	lastPage := (len(rows) + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	inner := map[string]any{
		"data": rows[start:end],
		"meta": map[string]int{"current_page": page, "last_page": lastPage},
	}

	var body any = inner
	if doubleWrap {
		body = map[string]any{"data": inner}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		panic(fmt.Sprintf("encode mock page: %v", err))
	}
}
