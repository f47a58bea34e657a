package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "advisorctl"

// Actual version can be specified in build command.
var version = "unknown"

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCommand builds the command tree. Each call gets its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ADVISOR")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           app,
		Short:         "advisorctl classifies skills into career paths without running the API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("output", "o", outputText, "output format: text, json or yaml")
	_ = v.BindPFlag("output", root.PersistentFlags().Lookup("output"))

	root.AddCommand(
		newClassifyCommand(v),
		newCareersCommand(v),
		newVersionCommand(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

func outputFormat(v *viper.Viper) (string, error) {
	f := strings.ToLower(strings.TrimSpace(v.GetString("output")))
	switch f {
	case "", outputText:
		return outputText, nil
	case outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", f)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		},
	}
}
