package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/t7e/core/plural"
)

func pluralCmd() *cobra.Command {
	var (
		nplurals int
		upTo     int
	)

	cmd := &cobra.Command{
		Use:   "plural <expression|Plural-Forms> [n...]",
		Short: "Evaluate a Plural-Forms rule",
		Long: "Evaluate a plural expression such as \"n != 1\" or a full header value such as\n" +
			"\"nplurals=2; plural=(n != 1);\" for the given counts, or for 0..--up-to.",
		Args: cobra.MinimumNArgs(1),
		// Evaluation needs no catalog source.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			forms, err := compileRule(args[0], nplurals)
			if err != nil {
				return err
			}

			counts := make([]int, 0, len(args)-1)
			for _, arg := range args[1:] {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid count %q: %w", arg, err)
				}
				counts = append(counts, n)
			}
			if len(counts) == 0 {
				for n := 0; n <= upTo; n++ {
					counts = append(counts, n)
				}
			}

			out := cmd.OutOrStdout()
			for _, n := range counts {
				if _, err := fmt.Fprintf(out, "%d\t%d\n", n, forms.Func(n)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&nplurals, "nplurals", 2, "number of plural forms for a bare expression")
	cmd.Flags().IntVar(&upTo, "up-to", 10, "highest count evaluated when none are given")

	return cmd
}

func compileRule(rule string, nplurals int) (plural.Forms, error) {
	if strings.Contains(rule, "plural=") {
		return plural.ParseForms(rule)
	}
	fn, err := plural.Compile(rule, nplurals)
	if err != nil {
		return plural.Forms{}, err
	}
	return plural.Forms{NPlurals: nplurals, Expr: rule, Func: fn}, nil
}
