package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// renderCommand creates the render command for drawing a layout file.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		rf      renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a layout file to PNG or SVG",
		Long: `Render a layout file produced by 'layout' to PNG, SVG or JSON.

The canvas is the bounding box of the rectangles. Rectangles are drawn in
placement order with a one pixel outline. An empty layout is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			rf.apply(cmd, &opts)
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without .layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	rf.register(cmd, "output format(s): png (default), svg, json (comma-separated)")

	return cmd
}

// runRender loads the layout and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	l, err := pkgio.ImportLayout(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	if len(l.Rects) == 0 {
		return errors.New(errors.ErrCodeEmptyLayout, "%s has no rectangles", input)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(artifacts)), "cached", cacheHit)

	base := output
	if base == "" {
		base = basePath(basePath(input))
	}
	if err := errors.ValidatePath(base); err != nil {
		return err
	}
	if err := checkOverwrite(input, "", base, opts.Formats); err != nil {
		return err
	}
	paths, err := writeArtifacts(artifacts, opts.Formats, base)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(l.Rects), 0, cacheHit)
	return nil
}
