// Command minutes analyzes meeting transcripts: it normalizes the raw text,
// generates a summary, and extracts decisions and action items, storing the
// results locally.
package main
