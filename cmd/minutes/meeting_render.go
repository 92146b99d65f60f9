package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"minutes/internal/api"
)

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func sectionHeader(title string, colorize bool) []string {
	rule := strings.Repeat("-", len(title))
	if colorize {
		title = ansiBlue + title + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{title, rule}
}

func renderMeeting(writer io.Writer, view *api.MeetingView) {
	colorize := shouldColorize(writer)

	for _, line := range sectionHeader(view.Title, colorize) {
		fmt.Fprintln(writer, line)
	}
	fmt.Fprintf(writer, "ID:           %s\n", view.ID)
	fmt.Fprintf(writer, "Status:       %s\n", view.Status)
	fmt.Fprintf(writer, "Participants: %s\n", participantsLine(view.Participants))
	if view.ErrorMessage != "" {
		fmt.Fprintf(writer, "Error:        %s\n", view.ErrorMessage)
	}

	if view.Summary != "" {
		fmt.Fprintln(writer)
		for _, line := range sectionHeader("Summary", colorize) {
			fmt.Fprintln(writer, line)
		}
		fmt.Fprintln(writer, strings.TrimSpace(view.Summary))
	}

	if len(view.KeyTopics) > 0 {
		fmt.Fprintln(writer)
		for _, line := range sectionHeader("Key Topics", colorize) {
			fmt.Fprintln(writer, line)
		}
		for _, topic := range view.KeyTopics {
			fmt.Fprintf(writer, "- %s\n", topic)
		}
	}

	if len(view.Decisions) > 0 {
		fmt.Fprintln(writer)
		for _, line := range sectionHeader("Decisions", colorize) {
			fmt.Fprintln(writer, line)
		}
		rows := make([][]string, 0, len(view.Decisions))
		for _, decision := range view.Decisions {
			rows = append(rows, []string{decision.Decision, decision.MadeBy, decision.Context})
		}
		fmt.Fprintln(writer, renderTable(
			[]string{"Decision", "Made By", "Context"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft},
		))
	}

	if len(view.ActionItems) > 0 {
		fmt.Fprintln(writer)
		for _, line := range sectionHeader("Action Items", colorize) {
			fmt.Fprintln(writer, line)
		}
		rows := make([][]string, 0, len(view.ActionItems))
		for _, item := range view.ActionItems {
			rows = append(rows, []string{item.Task, item.Owner, item.Deadline, item.Priority})
		}
		fmt.Fprintln(writer, renderTable(
			[]string{"Task", "Owner", "Deadline", "Priority"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
		))
	}
}

func participantsLine(participants []string) string {
	if len(participants) == 0 {
		return "Not specified"
	}
	return strings.Join(participants, ", ")
}
