package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexfst",
	Short: "lexfst compiles pronunciation lexicons into decoding-graph transducers",
	Long: `lexfst turns a word list (or an existing lexicon) plus token and word
symbol tables into the lexical layer of a speech-recognition decoding graph:
the L transducer and its disambiguated variant L_disambig.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
