package main

import (
	"fmt"
	"strings"

	"github.com/prodbysky/pkombi/calc"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>...",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			n, err := calc.Eval(expr)
			if err != nil {
				return fmt.Errorf("calc: %w", err)
			}
			fmt.Println(n)
			return nil
		},
	}
}
