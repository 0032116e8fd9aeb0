// Package http provides the application's HTTP surface.
//
// The server exposes exactly two routes:
//   - GET /        greeting page naming the application
//   - GET /uptime  liveness/readiness probe, always "OK"
//
// Anything else falls through to the router's 404 (or 405 for a known
// path with the wrong method).
package http
