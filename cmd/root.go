package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strikegate",
	Short: "Strikegate - schema-enforced gateway for strike-for-cause voir dire analysis",
	Long: `Strikegate validates strike-for-cause analysis requests against a formal
schema, forces the generative backend to answer through a structured tool
contract, and re-validates the assembled response before anything reaches
the caller.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
