package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/collager/internal/collage"
	"github.com/ironsheep/collager/internal/imaging"
)

// runCollage loads the input and library, runs the collage, and saves it.
func runCollage(cmd *cobra.Command, opts *options, inputPath, libraryDir, outputPath string) error {
	logger, err := opts.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	cfg, err := opts.config()
	if err != nil {
		return err
	}

	cache := imaging.NewImageCache()

	input, err := cache.Load(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}
	cache.Evict(inputPath)

	input = imaging.FitWithin(input, opts.maxSize)
	target, err := imaging.ToLabGrid(input)
	if err != nil {
		return fmt.Errorf("failed to convert input: %w", err)
	}
	logger.Info("input loaded", "path", inputPath, "width", target.Width(), "height", target.Height())

	switch opts.background {
	case backgroundDominant:
		seed := imaging.DominantLab(input)
		cfg.BackgroundSeed = &seed
	case backgroundCluster:
		seed, err := imaging.LargestClusterLab(target, backgroundClusters)
		if err != nil {
			return err
		}
		cfg.BackgroundSeed = &seed
	}
	if cfg.BackgroundSeed != nil {
		logger.Debug("background seeded", "method", opts.background, "color", imaging.DescribeColor(*cfg.BackgroundSeed).Hex)
	}

	paths, err := imaging.ScanLibrary(libraryDir)
	if err != nil {
		return err
	}
	library, err := imaging.LoadLibrary(cache, paths)
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}
	logger.Info("library loaded", "dir", libraryDir, "images", len(library))

	logger.Debug("configuration",
		"steps", cfg.Steps, "amount", cfg.Amount, "starts", cfg.Starts,
		"temperature", cfg.StartingTemperature, "features", opts.describeFeatures(),
		"seed", opts.seed)

	driver := collage.New(cfg, target,
		collage.WithLogger(logger.Named("collage")),
		collage.WithSource(opts.source()),
		collage.WithSnapshotWriter(imaging.SnapshotDir{Dir: opts.debugDir}),
	)

	started := time.Now()
	result, err := driver.Run(library)
	if err != nil {
		return err
	}

	if err := imaging.Save(outputPath, imaging.ToNRGBA(result.Canvas)); err != nil {
		return err
	}

	logger.Info("collage saved",
		"path", outputPath,
		"layers", len(result.Layers),
		"background", imaging.DescribeColor(result.Background).Hex,
		"error", fmt.Sprintf("%.3f", result.Error),
		"elapsed", time.Since(started).Round(time.Millisecond))
	return nil
}
