// Package textutil provides small text helpers shared by the CLI and the
// workflow service.
package textutil

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleFromPath derives a human-readable meeting title from a transcript
// file path. Separator runes collapse to single spaces and the result is
// title-cased.
func TitleFromPath(sourcePath string) string {
	if sourcePath == "" {
		return "Untitled Meeting"
	}
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled Meeting"
	}
	return cases.Title(language.Und).String(title)
}
