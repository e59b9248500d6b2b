package main

import (
	"fmt"
	"path/filepath"

	"github.com/aretw0/basketweave"
	"github.com/aretw0/basketweave/pkg/manifest"
	"github.com/spf13/cobra"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [manifest]",
	Short: "Print the baskets and notes a manifest describes",
	Long:  `Tree validates a manifest like build does, then prints the basket forest instead of writing it.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		manifestPath, err := resolveManifest(args)
		if err != nil {
			fatal("No manifest", err)
		}

		m, forest, err := basketweave.LoadManifest(manifestPath)
		if err != nil {
			fatal("Invalid manifest", err)
		}

		label := m.Output
		if label == "" {
			label = filepath.Base(manifestPath)
		}
		fmt.Print(manifest.RenderTree(label, forest))
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
