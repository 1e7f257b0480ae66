// Package cli provides the command-line interface for collager.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo carries the version information stamped in by the linker.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// String returns the multi-line form printed by the version command.
func (b BuildInfo) String() string {
	return fmt.Sprintf("collager %s\n  Build time: %s\n  Git commit: %s", b.Version, b.BuildTime, b.GitCommit)
}

// NewRootCmd builds the collager command tree. Each call returns an
// independent tree, so tests can run commands side by side.
func NewRootCmd(info BuildInfo) *cobra.Command {
	opts := defaultOptions()

	root := &cobra.Command{
		Use:   "collager <input> <library-dir> <output>",
		Short: "Approximate an image with a collage of other images",
		Long: `collager rebuilds an input image as a stack of transformed copies of the
images in a library directory, placed over a flat background color.

Each layer is chosen by simulated annealing: the image, its position, scale,
rotation, hue shift, and transparency are searched to minimize the
perceptual (CIE Lab) distance to the input.

Supported image formats: PNG, JPEG, GIF, BMP, WebP

Examples:
  # Build a 100 layer collage
  collager portrait.jpg ./tiles collage.png

  # Quick, reproducible preview on a downsized input
  collager --max-size 256 --amount 40 --steps 300 --seed 7 portrait.jpg ./tiles preview.png

  # Flat, axis-aligned tiles only, with a snapshot after every layer
  collager --rotation=false --hue=false --debug portrait.jpg ./tiles collage.png`,
		Args:         cobra.ExactArgs(3),
		Version:      info.Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollage(cmd, opts, args[0], args[1], args[2])
		},
	}

	opts.bind(root.Flags())
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level (trace, debug, info, warn, error); overrides "+logLevelEnv)

	root.SetVersionTemplate(info.String() + "\n")
	root.AddCommand(newVersionCmd(info))

	return root
}

func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
		},
	}
}
