// Package meetings persists meeting transcripts and their analysis results
// in a local SQLite database.
package meetings
