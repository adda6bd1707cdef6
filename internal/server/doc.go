// Package server wires and runs the dev registry's HTTP transport,
// including startup, signal handling, and graceful shutdown.
package server
