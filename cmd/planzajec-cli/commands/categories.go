package commands

import (
	"os"
	"planzajec-backend/services/planzajec"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	categorySearch string
	categoryMode   string
	categoryYear   string
)

func init() {
	categoriesCmd.Flags().StringVar(&categorySearch, "search", "", "Only show entries similar to this text.")
	categoriesCmd.Flags().StringVar(&categoryMode, "mode", "", "Only show groups of this study mode (S or N).")
	categoriesCmd.Flags().StringVar(&categoryYear, "year", "", "Only show groups of this year of study.")
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories [type] [label] [--search <text>]",
	Short: "Lists categories, or the schedules inside one category.",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBackend()
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)

		if len(args) < 2 {
			typ := ""
			if len(args) == 1 {
				typ = args[0]
			}
			res, err := b.GetCategories(cmd.Context(), &planzajec.GetCategoriesRequest{
				Type:   typ,
				Search: categorySearch,
			})
			if err != nil {
				return err
			}
			t.AppendHeader(table.Row{"Type", "Category"})
			for _, c := range res.Categories {
				t.AppendRow(table.Row{string(c.Type), c.Label})
			}
			t.Render()
			return nil
		}

		res, err := b.GetCategoryDetail(cmd.Context(), &planzajec.GetCategoryDetailRequest{
			Type:  args[0],
			Label: args[1],
			Filter: planzajec.Filter{
				Search: categorySearch,
				Mode:   categoryMode,
				Year:   categoryYear,
			},
		})
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"ID", "Label", "Mode", "Year", "Language"})
		for _, e := range res.Entries {
			language := e.Details.Language
			if e.Details.LanguageLevel != "" {
				language += " " + e.Details.LanguageLevel
			}
			t.AppendRow(table.Row{string(e.Type) + e.ID, e.Label, e.Details.Mode, e.Details.Year, language})
		}
		t.Render()
		return nil
	},
}
