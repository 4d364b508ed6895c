package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pkombi",
		Short: "A parser-combinator playground",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newUICmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
