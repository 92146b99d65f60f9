// Package analysis implements the meeting analysis pipeline: a fixed
// sequence of stages that share one accumulating state.
//
// Each stage reads the full state and returns a sparse partial update that
// the analyzer merges by whole-value replacement. Stage failures are
// recorded in the state rather than propagated, so the pipeline always runs
// to completion and returns a best-effort result.
package analysis
