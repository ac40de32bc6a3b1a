// planctl generates itineraries offline from YAML trip fixtures.
//
// Usage:
//
//	planctl generate -f trip.yaml [--reserve] [--success-rate=0.85]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "planctl",
	Short: "Offline itinerary generator",
	Long:  "planctl runs the itinerary pipeline against a YAML trip fixture\nwithout Mongo, Redis or network access and prints the result as JSON.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
