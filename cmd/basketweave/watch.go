package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/basketweave"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [manifest]",
	Short: "Rebuild the source directory whenever the manifest changes",
	Long: `Watch builds like build does, then rebuilds every time a file in the
manifest's directory changes. Each rebuild is a complete run. Stop with Ctrl+C.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manifestPath, err := resolveManifest(args)
		if err != nil {
			fatal("No manifest", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		slog.Info("watching", "manifest", manifestPath)
		err = basketweave.Watch(ctx, manifestPath, viper.GetString("output"), func(dir *basketweave.Directory, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
				return
			}
			stats := dir.Stats()
			fmt.Printf("Wrote %d baskets, %d notes to %s\n", stats.Baskets, stats.Notes, dir.Path)
		}, basketweave.WithLogger(slog.Default()))
		if err != nil {
			fatal("Watch failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
