// Package pagination provides the sequential page loop for paginated
// Fullfield endpoints.
//
// The loop issues one request per page, starting at page 1, and accumulates
// rows until the API reports the last page, a page comes back empty, a page
// request fails, or the page cap is hit. Failures never propagate as hard
// errors: the accumulated rows are returned with Truncated set and the
// failure reason attached, so callers can tell "genuinely empty" from
// "fetch aborted early".
//
// The page cap is a safety valve against pathological pagination (an API
// that reports current_page < last_page forever) and must always be set.
package pagination
