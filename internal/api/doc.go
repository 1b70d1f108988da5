// Package api implements the low-level HTTP transport for the Sendly API.
//
// It handles request serialization, bearer authentication, bounded
// retries with exponential backoff, and the mapping of HTTP failures
// into typed errors. The public sendly package wraps these errors into
// its own types at the SDK boundary.
package api
