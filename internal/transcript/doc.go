// Package transcript normalizes free-form meeting transcripts into a
// canonical sequence of speaker/timestamp/text segments.
//
// The classifier recognizes four line formats, tried in priority order:
//
//	[00:05:23] Speaker Name: Text
//	00:05:23 - Speaker Name: Text
//	Speaker Name (00:05:23): Text
//	Speaker Name: Text
//
// Lines matching none of these are treated as continuations of the previous
// utterance rather than rejected, so arbitrary transcript text always parses.
package transcript
