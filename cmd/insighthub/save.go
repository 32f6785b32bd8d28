package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"insighthub/internal/editor"
)

func newSaveCmd(s *session) *cobra.Command {
	var (
		in          editor.SaveInput
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create an entry, or update one with --id",
		Example: `  insighthub save --category Go --sub Concurrency --title Channels --content-file notes.md
  insighthub save --id item-0190... --category Go --sub Patterns --title "Fan-in"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if in.EditingID != "" {
				if err := fillUnchanged(cmd, s, &in); err != nil {
					return err
				}
			}
			if contentFile != "" {
				content, err := readContent(cmd.InOrStdin(), contentFile)
				if err != nil {
					return err
				}
				in.Content = content
			}

			out, err := s.app.Editor.Save(ctx, in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Saved %s (%s)\n", out.Entry.Title, out.Entry.ID)
			if out.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), out.Warning)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.EditingID, "id", "", "id of the entry to update")
	f.StringVar(&in.Category, "category", "", "category title")
	f.StringVar(&in.SubCategory, "sub", "", "subcategory title")
	f.StringVar(&in.Title, "title", "", "entry title")
	f.StringVar(&in.Description, "description", "", "short description")
	f.StringVar(&in.Content, "content", "", "markdown notes")
	f.StringVar(&contentFile, "content-file", "", "read markdown notes from a file, - for stdin")
	f.StringVar(&in.URL, "url", "", "external link")
	return cmd
}

// fillUnchanged keeps the stored value of every field the user did not pass.
func fillUnchanged(cmd *cobra.Command, s *session, in *editor.SaveInput) error {
	current, err := s.app.Editor.Form(cmd.Context(), in.EditingID)
	if err != nil {
		return fmt.Errorf("%s: %w", in.EditingID, err)
	}

	f := cmd.Flags()
	keep := func(flag string, dst *string, stored string) {
		if !f.Changed(flag) {
			*dst = stored
		}
	}
	keep("category", &in.Category, current.Category)
	keep("sub", &in.SubCategory, current.SubCategory)
	keep("title", &in.Title, current.Title)
	keep("description", &in.Description, current.Description)
	keep("content", &in.Content, current.Content)
	keep("url", &in.URL, current.URL)
	return nil
}

func readContent(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read content: %w", err)
	}
	return string(b), nil
}
