// Package decode owns the per-step decode orchestration.
//
// Ownership boundary:
// - readiness gating and output sentinels
// - fresh-parser-per-step scan with error-driven resynchronization
// - block port table and width validation
//
// The frame grammar itself lives behind the Parser interface; see
// internal/sbgc for the concrete implementation.
package decode
