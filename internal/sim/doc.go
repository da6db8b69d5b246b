// Package sim stands in for the host scheduler: one block invocation per
// discrete step, no re-entry, results handed to a sink.
package sim
