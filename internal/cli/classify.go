package cli

import (
	"errors"
	"fmt"
	"strings"

	"career-advisor/internal/domain/career"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type classifyResult struct {
	Skills      string   `json:"skills" yaml:"skills"`
	CareerID    string   `json:"career_id" yaml:"career_id"`
	CareerPath  string   `json:"career_path" yaml:"career_path"`
	Keyword     string   `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Fallback    bool     `json:"fallback" yaml:"fallback"`
	NextSteps   []string `json:"next_steps" yaml:"next_steps"`
	SalaryRange string   `json:"salary_range" yaml:"salary_range"`
	JobGrowth   string   `json:"job_growth" yaml:"job_growth"`
}

func newClassifyCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <skills...>",
		Short: "Print the career path matched by the given skills",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(v)
			if err != nil {
				return err
			}

			skills := strings.TrimSpace(strings.Join(args, " "))
			if skills == "" {
				return errors.New("skills cannot be empty")
			}

			m := career.MatchSkills(skills)
			rec := career.Lookup(m.Category)
			res := classifyResult{
				Skills:      skills,
				CareerID:    string(rec.ID),
				CareerPath:  rec.Title,
				Keyword:     m.Keyword,
				Fallback:    m.Fallback,
				NextSteps:   rec.NextSteps,
				SalaryRange: rec.SalaryRange,
				JobGrowth:   rec.JobGrowth,
			}

			out := cmd.OutOrStdout()
			if format != outputText {
				return writeStructured(out, format, res)
			}

			reason := fmt.Sprintf("matched %q", m.Keyword)
			if m.Fallback {
				reason = "no keyword matched, default"
			}
			fmt.Fprintf(out, "%s (%s, %s)\n", rec.Title, rec.ID, reason)
			for i, s := range rec.NextSteps {
				fmt.Fprintf(out, "  %d. %s\n", i+1, s)
			}
			fmt.Fprintf(out, "Salary: %s\nGrowth: %s\n", rec.SalaryRange, rec.JobGrowth)
			return nil
		},
	}
}
