package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crypto-sentiment",
	Short: "A CLI for managing the crypto news sentiment pipeline",
	Long:  `Crypto Sentiment periodically ingests cryptocurrency news, classifies headline sentiment and maintains rolling per-coin aggregates.`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
