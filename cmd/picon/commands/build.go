package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/picon/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <input-dir> <output-dir>",
		Short: "Generate normalized picons from a source tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			return c.app.Build(cmd.Context(), opts)
		},
	}

	cmd.Flags().Int("width", 512, "Frame width in pixels")
	cmd.Flags().Int("height", 250, "Frame height in pixels")
	cmd.Flags().String("prefix", "sxa_", "Output filename prefix")
	cmd.Flags().Bool("no-upscale", false, "Never enlarge logos smaller than the frame")
	cmd.Flags().String("mode", "all", "Build mode: all, changed, or missing")
	cmd.Flags().String("only", "", `Top-level categories to include (ex: "Portugal,France")`)
	cmd.Flags().String("exclude", "", `Top-level categories to exclude (ex: "Archives,Test")`)
	cmd.Flags().String("match", "", `Glob patterns on relative paths (ex: "Portugal/*.png" or "*.svg")`)
	cmd.Flags().String("svg-engine", "auto", "SVG engine: auto, software, external, or skip")
	cmd.Flags().Bool("clean", false, "Empty the output directory before generation")
	cmd.Flags().Bool("dry-run", false, "Report actions without writing to disk")

	return cmd
}

// resolveOptions layers option sources: built-in defaults, then the profile
// file, then explicitly set flags.
func (c *CLI) resolveOptions(cmd *cobra.Command, input, output string) (domain.Options, error) {
	opts := domain.Options{
		InputRoot:  input,
		OutputRoot: output,
		Config:     domain.DefaultConfig(),
		Mode:       domain.ModeAll,
	}

	profilePath, _ := cmd.Flags().GetString("profile")
	profile, err := c.app.Profile(profilePath)
	if err != nil {
		return domain.Options{}, err
	}
	profile.Apply(&opts)

	flags := cmd.Flags()
	if flags.Changed("width") {
		opts.Config.FrameWidth, _ = flags.GetInt("width")
	}
	if flags.Changed("height") {
		opts.Config.FrameHeight, _ = flags.GetInt("height")
	}
	if flags.Changed("prefix") {
		opts.Config.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("no-upscale") {
		noUpscale, _ := flags.GetBool("no-upscale")
		opts.Config.AllowUpscale = !noUpscale
	}
	if flags.Changed("mode") {
		raw, _ := flags.GetString("mode")
		mode, err := domain.ParseMode(raw)
		if err != nil {
			return domain.Options{}, err
		}
		opts.Mode = mode
	}
	if flags.Changed("svg-engine") {
		raw, _ := flags.GetString("svg-engine")
		engine, err := domain.ParseEngine(raw)
		if err != nil {
			return domain.Options{}, err
		}
		opts.Config.SVGEngine = engine
	}
	if flags.Changed("only") {
		raw, _ := flags.GetString("only")
		opts.Filters.Only = splitCSV(raw)
	}
	if flags.Changed("exclude") {
		raw, _ := flags.GetString("exclude")
		opts.Filters.Exclude = splitCSV(raw)
	}
	if flags.Changed("match") {
		raw, _ := flags.GetString("match")
		opts.Filters.Patterns = splitCSV(raw)
	}
	opts.Clean, _ = flags.GetBool("clean")
	opts.DryRun, _ = flags.GetBool("dry-run")

	return opts, nil
}

// splitCSV parses a comma-separated list, trimming blanks.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
