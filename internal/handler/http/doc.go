// Package http implements the dev registry's HTTP surface: a blob
// gateway over the in-memory content store and a commitment log over the
// in-memory registry. It is wire-compatible with the store and ledger
// HTTP clients, so the full seal and recover pipeline can run locally
// without IPFS or a chain endpoint.
package http
