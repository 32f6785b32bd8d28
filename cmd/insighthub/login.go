package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"insighthub/internal/model"
	"insighthub/internal/settings"
)

func newLoginCmd(s *session) *cobra.Command {
	var in settings.SaveInput

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the GitHub repository and token used for sync",
		Long:  "Store the sync target. The token falls back to $GITHUB_TOKEN. Writes are only allowed while a token is stored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Token == "" {
				in.Token = os.Getenv("GITHUB_TOKEN")
			}
			cfg, err := s.app.Settings.Save(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Syncing to %s/%s@%s (token %s)\n", cfg.Owner, cfg.Repo, cfg.Branch, cfg.MaskedToken())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Owner, "owner", "", "repository owner")
	f.StringVar(&in.Repo, "repo", "", "repository name")
	f.StringVar(&in.Branch, "branch", model.DefaultBranch, "branch")
	f.StringVar(&in.Token, "token", "", "personal access token with contents:write")
	return cmd
}

func newLogoutCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.app.Settings.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out; the knowledge base is read-only now")
			return nil
		},
	}
}
