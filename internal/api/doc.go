// Package api owns the HTTP surface of the decode service.
//
// Ownership boundary:
// - gin engine assembly, CORS, request logging/metrics middleware
// - /v1/decode one-shot step endpoint
// - /v1/stream websocket step endpoint
package api
