// Package repository implements MySQL-backed storage for reservations and
// for webhook payloads whose delivery exhausted all retries. Sentinel
// errors let handlers map storage outcomes to HTTP responses without
// inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when no record matches the requested identifier.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
