package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := s.app.Editor.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Removed {
				fmt.Fprintf(w, "No entry %s, nothing changed\n", args[0])
				return nil
			}
			fmt.Fprintf(w, "Deleted %s\n", args[0])
			if out.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), out.Warning)
			}
			return nil
		},
	}
}
