package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/basketweave"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <dir>",
	Short: "Check that a directory holds a complete source",
	Long: `Verify parses baskets/baskets.xml, checks that every basket it lists has a
folder with a .basket file, and that tags.xml exists.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := basketweave.Verify(args[0], basketweave.WithLogger(slog.Default())); err != nil {
			fatal("Verification failed", err)
		}
		fmt.Println("OK", args[0])
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
