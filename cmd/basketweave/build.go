package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/basketweave"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [manifest]",
	Short: "Write a source directory from a manifest",
	Long: `Build loads a YAML manifest, validates the whole model and writes the
source directory. Without an argument the manifest is taken from the config
or looked up as basketweave.yaml in the current directory and its parents.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manifestPath, err := resolveManifest(args)
		if err != nil {
			fatal("No manifest", err)
		}

		opts := []basketweave.Option{
			basketweave.WithLogger(slog.Default()),
			basketweave.WithAdditionalEmblems(viper.GetStringSlice("emblems")...),
			basketweave.WithAdditionalBackgrounds(viper.GetStringSlice("backgrounds")...),
			basketweave.WithAdditionalIcons(viper.GetStringSlice("icons")...),
		}

		dir, err := basketweave.Build(context.Background(), manifestPath, viper.GetString("output"), opts...)
		if err != nil {
			fatal("Build failed", err)
		}

		stats := dir.Stats()
		fmt.Printf("Wrote %d baskets, %d notes, %d resources to %s\n",
			stats.Baskets, stats.Notes, stats.Resources, dir.Path)
	},
}

// resolveManifest picks the manifest from args, then config, then lookup.
func resolveManifest(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if m := viper.GetString("manifest"); m != "" {
		return m, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return basketweave.FindManifest(cwd)
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "Output directory (default: the manifest's output entry)")
	buildCmd.Flags().StringSlice("emblems", nil, "Extra tag emblem files to ship")
	buildCmd.Flags().StringSlice("backgrounds", nil, "Extra background images to ship")
	buildCmd.Flags().StringSlice("icons", nil, "Extra basket icons to ship")
	_ = viper.BindPFlag("output", buildCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("emblems", buildCmd.Flags().Lookup("emblems"))
	_ = viper.BindPFlag("backgrounds", buildCmd.Flags().Lookup("backgrounds"))
	_ = viper.BindPFlag("icons", buildCmd.Flags().Lookup("icons"))
	rootCmd.AddCommand(buildCmd)
}
