package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tagcloud/pkg/errors"
	pkgio "github.com/matzehuels/tagcloud/pkg/io"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// layoutCommand creates the layout command for placing a size list.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		lf      layoutFlags
		rf      renderFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [sizes]",
		Short: "Place a list of rectangle sizes into a cloud",
		Long: `Place a list of rectangle sizes into a cloud.

The input is a .txt file with one WxH per line, a .json array of
{"width","height"} objects, or a .toml file with [[rect]] tables and an
optional [center]. Sizes are placed in file order.

The result is written as <input>.layout.json, which 'render' can draw again
later. With --format, or formats in the config file, images are written
next to it as well.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			opts.Input = args[0]
			opts.Refresh = refresh
			if err := lf.apply(cmd, &opts); err != nil {
				return err
			}
			rf.apply(cmd, &opts)
			return c.runLayout(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached layout exists")
	lf.register(cmd)
	rf.register(cmd, "also render image format(s): png, svg (comma-separated)")

	return cmd
}

// runLayout loads the sizes, computes the layout and writes the outputs.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if err := pipeline.Load(&opts); err != nil {
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath(opts.Input) + ".layout.json"
	}
	if err := errors.ValidatePath(outputPath); err != nil {
		return err
	}
	base := basePath(strings.TrimSuffix(outputPath, ".json"))
	if err := checkOverwrite(opts.Input, outputPath, base, opts.Formats); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Placing %d rectangles...", len(opts.Sizes)))
	spinner.Start()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	l, st, cacheHit, err := runner.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Placed %d rectangles", len(l.Rects)), "cached", cacheHit)
	logger.Debug("layout work", "spiral_steps", st.SpiralSteps, "press_steps", st.PressSteps)

	if err := pkgio.ExportLayout(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Rects), st.SpiralSteps, cacheHit)

	if len(opts.Formats) > 0 {
		artifacts, err := runner.Render(ctx, l, opts)
		if err != nil {
			return err
		}
		paths, err := writeArtifacts(artifacts, opts.Formats, base)
		if err != nil {
			return err
		}
		for _, p := range paths {
			printFile(p)
		}
	}

	printNewline()
	printNextStep("Render", appName+" render "+outputPath)
	return nil
}

// basePath strips the extension from path.
func basePath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// checkOverwrite fails with INVALID_PATH if the layout file at output or an
// artifact at base.<format> would replace the input file. output may be
// empty when no layout file is written.
func checkOverwrite(input, output, base string, formats []string) error {
	in := filepath.Clean(input)
	targets := make([]string, 0, len(formats)+1)
	if output != "" {
		targets = append(targets, output)
	}
	for _, f := range formats {
		targets = append(targets, base+"."+f)
	}
	for _, p := range targets {
		if filepath.Clean(p) == in {
			return errors.New(errors.ErrCodeInvalidPath, "output %s would overwrite the input, use -o", input)
		}
	}
	return nil
}

// writeArtifacts writes each format to base.<format> in the given order.
func writeArtifacts(artifacts map[string][]byte, formats []string, base string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + format
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
