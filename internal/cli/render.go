package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flowbox/pkg/errors"
	"github.com/matzehuels/flowbox/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	input    inputFlags
	output   string // output file; empty means stdout
	format   string // text, json, dot or svg
	detailed bool   // descriptions and kinds in DOT/SVG labels
	noCache  bool
	refresh  bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render (-y FILE | -j FILE | -t FILE)",
		Short: "Render a workflow definition",
		Example: `  flowbox render -y pipeline.yaml
  flowbox render -j pipeline.json -o pipeline.txt
  flowbox render -y pipeline.yaml -f svg -o pipeline.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.cfg.Render.Format
			}
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.cfg.Render.Detailed
			}
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), &opts)
		},
	}

	opts.input.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (defaults to stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.DefaultFormat, "output format: text, json, dot or svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include descriptions in dot/svg node labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.ValidFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	data, format, err := opts.input.read()
	if err != nil {
		return err
	}
	path, _ := opts.input.resolve()

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	var spin *Spinner
	if opts.output != "" && opts.format == pipeline.FormatSVG {
		spin = newSpinnerWithContext(ctx, c.errOut, "Rendering "+filepath.Base(path))
		spin.Start()
	}

	res, err := runner.Execute(ctx, pipeline.Options{
		Input:       data,
		InputFormat: format,
		Formats:     []string{opts.format},
		Detailed:    opts.detailed,
		Refresh:     opts.refresh,
	})
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	prog.done("rendered " + path)

	artifact := res.Artifacts[opts.format]
	if opts.output == "" {
		if opts.format == pipeline.FormatText {
			_, err = fmt.Fprintln(c.out, string(artifact))
		} else {
			_, err = c.out.Write(artifact)
		}
		return err
	}

	if err := errors.ValidatePath(opts.output); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, artifact, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	printSuccess(c.errOut, "Rendered %s", path)
	printFile(c.errOut, opts.output)
	printStats(c.errOut, res.Stats.StepCount, res.Stats.EdgeCount, res.CacheInfo.RenderHit)
	return nil
}
