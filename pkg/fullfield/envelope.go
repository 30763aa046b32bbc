package fullfield

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pvscout/fullfield-scout/pkg/pagination"
)

// The Fullfield API wraps results in one of three observed envelope shapes:
//
//	{"data": [...], "meta": {"current_page": n, "last_page": m}}
//	{"data": {"data": [...], "meta": {...}}}        (boxscore endpoints)
//	[...]                                           (bare array, no meta)
//
// parseEnvelope normalizes all of them into one pagination.Page before the
// page loop consumes it. Missing pagination metadata defaults current_page
// and last_page to the requested page, which terminates the loop with the
// same effect as an API that reports a single page.

type meta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *meta           `json:"meta"`
}

func parseEnvelope(body []byte, page int) (*pagination.Page, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	// Bare array: rows with no envelope at all
	if trimmed[0] == '[' {
		return parseRows(trimmed, nil, page)
	}

	var outer envelope
	if err := json.Unmarshal(trimmed, &outer); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	inner := bytes.TrimSpace(outer.Data)
	if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
		return parseRows([]byte("[]"), outer.Meta, page)
	}

	// Double-wrapped: data is itself an envelope carrying rows + meta
	if inner[0] == '{' {
		var nested envelope
		if err := json.Unmarshal(inner, &nested); err != nil {
			return nil, fmt.Errorf("decode nested envelope: %w", err)
		}
		m := nested.Meta
		if m == nil {
			m = outer.Meta
		}
		return parseRows(nested.Data, m, page)
	}

	return parseRows(inner, outer.Meta, page)
}

func parseRows(data json.RawMessage, m *meta, page int) (*pagination.Page, error) {
	var rows []json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("decode rows: %w", err)
		}
	}

	p := &pagination.Page{
		Rows:        rows,
		CurrentPage: page,
		LastPage:    page,
	}
	if m != nil {
		if m.CurrentPage > 0 {
			p.CurrentPage = m.CurrentPage
		}
		if m.LastPage > 0 {
			p.LastPage = m.LastPage
		}
	}
	return p, nil
}
