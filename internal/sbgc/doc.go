// Package sbgc owns the SimpleBGC serial frame grammar.
//
// Ownership boundary:
// - framing constants and command ids
// - stateful byte-at-a-time frame parser
// - frame encoder for bench and test traffic
package sbgc
