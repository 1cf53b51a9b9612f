package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	ConfigFlag  string
	VectorsFlag string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bfcheck",
		Short:        "Checks the Blowfish implementation against known-answer vectors",
		RunE:         CheckCommand,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", "", "Path to the directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&VectorsFlag, "vectors", "", "YAML file of vectors to use instead of the built-in set")

	rootCmd.AddCommand(listCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
