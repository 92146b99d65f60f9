package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"minutes/internal/api"
	"minutes/internal/config"
	"minutes/internal/meetings"
)

func newMeetingsCommand(ctx *commandContext) *cobra.Command {
	meetingsCmd := &cobra.Command{
		Use:   "meetings",
		Short: "Inspect stored meetings",
	}

	meetingsCmd.AddCommand(newMeetingsListCommand(ctx))
	meetingsCmd.AddCommand(newMeetingsShowCommand(ctx))
	meetingsCmd.AddCommand(newMeetingsRemoveCommand(ctx))

	return meetingsCmd
}

func newMeetingsListCommand(ctx *commandContext) *cobra.Command {
	var statusFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses, err := parseStatusFilter(statusFlag)
			if err != nil {
				return err
			}

			return ctx.withStore(func(cfg *config.Config, store *meetings.Store) error {
				items, err := store.List(cmd.Context(), statuses...)
				if err != nil {
					return err
				}
				views := api.FromMeetings(items)

				if jsonFlag {
					return writeJSON(cmd, api.MeetingListResponse{Meetings: views})
				}
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No meetings stored")
					return nil
				}

				rows := make([][]string, 0, len(views))
				for _, view := range views {
					rows = append(rows, []string{
						view.ID,
						view.Title,
						view.Status,
						fmt.Sprintf("%d", len(view.Decisions)),
						fmt.Sprintf("%d", len(view.ActionItems)),
						view.CreatedAt,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Title", "Status", "Decisions", "Actions", "Created"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status (comma-separated: pending, analyzing, analyzed, failed)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the list as JSON")
	return cmd
}

func newMeetingsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var transcriptFlag bool

	cmd := &cobra.Command{
		Use:   "show <meeting-id>",
		Short: "Display one meeting's analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *meetings.Store) error {
				meeting, err := store.GetByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if meeting == nil {
					return fmt.Errorf("meeting %s not found", args[0])
				}
				view := api.FromMeeting(meeting)

				if jsonFlag {
					return writeJSON(cmd, api.MeetingResponse{Meeting: view})
				}
				renderMeeting(cmd.OutOrStdout(), &view)
				if transcriptFlag && view.ParsedTranscript != "" {
					out := cmd.OutOrStdout()
					fmt.Fprintln(out)
					for _, line := range sectionHeader("Transcript", shouldColorize(out)) {
						fmt.Fprintln(out, line)
					}
					fmt.Fprintln(out, view.ParsedTranscript)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the meeting as JSON")
	cmd.Flags().BoolVar(&transcriptFlag, "transcript", false, "Include the normalized transcript")
	return cmd
}

func newMeetingsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <meeting-id>",
		Short: "Delete a stored meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *meetings.Store) error {
				removed, err := store.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("meeting %s not found", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed meeting %s\n", args[0])
				return nil
			})
		},
	}
}

func parseStatusFilter(value string) ([]meetings.Status, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	var statuses []meetings.Status
	for _, part := range strings.Split(value, ",") {
		status := meetings.Status(strings.ToLower(strings.TrimSpace(part)))
		if status == "" {
			continue
		}
		if !meetings.ValidStatus(status) {
			return nil, fmt.Errorf("unknown status %q", part)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
