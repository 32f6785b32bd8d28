package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"insighthub/pkg/markdown"
)

func newShowCmd(s *session) *cobra.Command {
	var (
		width int
		style string
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := s.app.Catalog.FindEntry(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s / %s\n", ref.Category, ref.SubCategory)
			fmt.Fprintln(w, categoryStyle.Render(ref.Entry.Title))
			if ref.Entry.Description != "" {
				fmt.Fprintln(w, ref.Entry.Description)
			}
			if ref.Entry.URL != "" {
				fmt.Fprintln(w, ref.Entry.URL)
			}
			if p := markdown.TaskProgress(ref.Entry.Content); p.Total > 0 {
				fmt.Fprintf(w, "Progress: %d/%d tasks (%.0f%%)\n", p.Completed, p.Total, p.Percent)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, markdown.Terminal(ref.Entry.Content, width, style))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "wrap width")
	cmd.Flags().StringVar(&style, "style", markdown.DefaultStyle, "glamour style: dark, light, notty, ascii")
	return cmd
}
