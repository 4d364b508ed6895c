package main

import (
	"fmt"

	"github.com/prodbysky/pkombi"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pkombi version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(pkombi.Version().String())
			return nil
		},
	}
}
