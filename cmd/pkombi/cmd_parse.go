package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prodbysky/pkombi"
	"github.com/prodbysky/pkombi/calc"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newParseCmd() *cobra.Command {
	var grammarName string
	var asJSON bool
	var verbose int

	cmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Run a demo grammar against an input and report the outcome",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbose, nil)

			input, err := readInput(args)
			if err != nil {
				return err
			}

			switch grammarName {
			case "digits":
				p := pkombi.Trace("digits", pkombi.Many1(pkombi.Digit()))
				return report(pkombi.Run(p, input), input, asJSON)
			case "number":
				number := pkombi.Map(pkombi.Many1(pkombi.Digit()), func(ds []int) int {
					n := 0
					for _, d := range ds {
						n = n*10 + d
					}
					return n
				})
				p := pkombi.Trace("number", number)
				return report(pkombi.Run(p, input), input, asJSON)
			case "calc":
				p := pkombi.Trace("calc", calc.Expr())
				return report(pkombi.Run(p, input), input, asJSON)
			default:
				return fmt.Errorf("unknown grammar: %s (expected digits, number, or calc)", grammarName)
			}
		},
	}

	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "calc", "grammar to run (digits, number, calc)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable; shows parse attempts)")

	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

type outcomeJSON struct {
	Matched bool   `json:"matched"`
	Value   any    `json:"value,omitempty"`
	Pos     int    `json:"pos"`
	Reason  string `json:"reason,omitempty"`
}

func report[T any](res pkombi.Result[T], input string, asJSON bool) error {
	if asJSON {
		out := outcomeJSON{Matched: res.Matched()}
		if res.Matched() {
			out.Value = res.Value()
			out.Pos = res.Next().Pos()
		} else {
			out.Pos = res.Failure().At.Pos()
			out.Reason = res.Failure().Error()
		}
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode outcome: %w", err)
		}
		return nil
	}

	if res.Matched() {
		fmt.Printf("matched: %v\n", res.Value())
		fmt.Printf("consumed %d of %d bytes", res.Next().Pos(), len(input))
		if rest := res.Next().Rest(); rest != "" {
			fmt.Printf(", remaining %q", rest)
		}
		fmt.Println()
		return nil
	}

	fmt.Println(res.Failure().Error())
	fmt.Println(input)
	fmt.Println(strings.Repeat(" ", res.Failure().At.Pos()) + "^")
	return fmt.Errorf("parse failed")
}
