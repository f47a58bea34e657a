package cli

import (
	"fmt"
	"text/tabwriter"

	"career-advisor/internal/domain/career"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type careerItem struct {
	ID          string `json:"id" yaml:"id"`
	CareerPath  string `json:"career_path" yaml:"career_path"`
	Description string `json:"description" yaml:"description"`
}

func newCareersCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "careers",
		Short: "List all available career paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(v)
			if err != nil {
				return err
			}

			all := career.All()
			items := make([]careerItem, 0, len(all))
			for _, r := range all {
				items = append(items, careerItem{ID: string(r.ID), CareerPath: r.Title, Description: r.Description})
			}

			if format != outputText {
				return writeStructured(cmd.OutOrStdout(), format, map[string]any{"careers": items})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCAREER PATH\tDESCRIPTION")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", it.ID, it.CareerPath, it.Description)
			}
			return tw.Flush()
		},
	}
}
