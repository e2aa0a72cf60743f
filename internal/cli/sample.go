package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowbox/pkg/pipeline"
	"github.com/matzehuels/flowbox/pkg/workflow"
)

// sampleCommand prints the built-in sample workflow.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the sample CI/CD workflow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := pipeline.Render(workflow.Sample(), format, detailed)
			if err != nil {
				return err
			}
			if format == pipeline.FormatText {
				_, err = fmt.Fprintln(c.out, string(data))
				return err
			}
			_, err = c.out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.DefaultFormat, "output format: text, json, dot or svg")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include descriptions in dot/svg node labels")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.ValidFormats, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}
