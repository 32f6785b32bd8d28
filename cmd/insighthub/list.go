package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"insighthub/internal/model"
	"insighthub/internal/projector"
)

var (
	categoryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subCategoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	idStyle          = lipgloss.NewStyle().Faint(true)
	matchStyle       = lipgloss.NewStyle().Reverse(true)
)

func newListCmd(s *session) *cobra.Command {
	var (
		search string
		sort   string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the catalog tree",
		Long:    "Print categories, subcategories and entries, optionally filtered by a case-insensitive search term.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := s.app.Config.View.DefaultSort
			if sort != "" {
				parsed, err := model.ParseSortOption(sort)
				if err != nil {
					return err
				}
				opt = parsed
			}

			snap := s.app.Catalog.Snapshot(cmd.Context())
			view := s.app.Projector.Project(snap.Revision, snap.Catalog, search, opt)
			renderTree(cmd.OutOrStdout(), view, search)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title substring")
	cmd.Flags().StringVar(&sort, "sort", "", "alpha-asc, alpha-desc or newest")
	return cmd
}

func renderTree(w io.Writer, view model.Catalog, term string) {
	if len(view) == 0 {
		if term != "" {
			fmt.Fprintf(w, "No results for %q\n", term)
		} else {
			fmt.Fprintln(w, "The knowledge base is empty.")
		}
		return
	}

	for _, cat := range view {
		fmt.Fprintln(w, categoryStyle.Render(highlight(cat.Title, term)))
		if cat.Description != "" {
			fmt.Fprintf(w, "  %s\n", cat.Description)
		}
		for _, sub := range cat.SubCategories {
			fmt.Fprintf(w, "  %s\n", subCategoryStyle.Render(highlight(sub.Title, term)))
			for _, e := range sub.Links {
				fmt.Fprintf(w, "    - %s %s\n", highlight(e.Title, term), idStyle.Render("("+e.ID+")"))
			}
		}
	}
	fmt.Fprintf(w, "\n%d entries\n", view.EntryCount())
}

func highlight(text, term string) string {
	if term == "" {
		return text
	}
	var b strings.Builder
	for _, seg := range projector.Highlight(text, term) {
		if seg.Match {
			b.WriteString(matchStyle.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
