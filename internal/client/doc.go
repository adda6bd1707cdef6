// Package client assembles the vault client runtime: wallet, crypto,
// blob store, registry, cache, and the proof worker, behind a small
// command-driven entry point.
package client
