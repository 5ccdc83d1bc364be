package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build variables set by ldflags.
var (
	buildVersion = "dev"
	buildCommit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edidctl",
		Short: "EDID generation service and toolkit",
		Long: `edidctl describes a display's timing, physical, color, and audio
characteristics and encodes them into an EDID 1.3 / CEA-861 binary block.`,
		Version: fmt.Sprintf("%s (%s)", buildVersion, buildCommit),
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(presetsCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("edidctl %s commit %s\n", buildVersion, buildCommit)
		},
	}
}
