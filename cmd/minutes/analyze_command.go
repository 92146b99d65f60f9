package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"minutes/internal/api"
	"minutes/internal/config"
	"minutes/internal/textutil"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var titleFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "analyze [transcript-file]",
		Short: "Run the analysis pipeline over a transcript",
		Long: `Run the analysis pipeline over a meeting transcript.

Reads the transcript from the given file, or from stdin when no file is
provided. The result is stored locally and printed to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transcript, source, err := readTranscript(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			title := strings.TrimSpace(titleFlag)
			if title == "" && source != "" {
				title = textutil.TitleFromPath(source)
			}

			return ctx.withService(func(cfg *config.Config, service *api.MeetingService) error {
				view, err := service.Analyze(cmd.Context(), title, transcript)
				if err != nil {
					return err
				}
				if jsonFlag {
					return writeJSON(cmd, api.MeetingResponse{Meeting: *view})
				}
				renderMeeting(cmd.OutOrStdout(), view)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&titleFlag, "title", "t", "", "Meeting title (defaults to the transcript file name)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the result as JSON")
	return cmd
}

// readTranscript loads the transcript from the file argument or stdin and
// returns the content plus the source path (empty for stdin).
func readTranscript(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read transcript from stdin: %w", err)
		}
		return string(data), "", nil
	}

	path := strings.TrimSpace(args[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read transcript file: %w", err)
	}
	return string(data), path, nil
}
