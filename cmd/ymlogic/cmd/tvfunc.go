// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yusuke-matsunaga/ym-logic/tvfunc"
)

var tvfuncCmd = &cobra.Command{
	Use:   "tvfunc",
	Short: "Truth-table queries",
}

var tvfuncAnalyzeCmd = &cobra.Command{
	Use:   "analyze <truth-table>",
	Short: "Classify a function and print its spectrum and prime cover",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := tvfunc.FromString(args[0])
		if err != nil {
			return err
		}
		w0, w1 := f.Walsh01()
		hex, err := f.Str(16)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "inputs:    %d\n", f.InputNum())
		fmt.Fprintf(out, "hex:       %s\n", hex)
		fmt.Fprintf(out, "count_one: %d\n", f.CountOne())
		fmt.Fprintf(out, "gate:      %s\n", f.Analyze())
		fmt.Fprintf(out, "walsh_0:   %d\n", w0)
		for v, c := range w1 {
			fmt.Fprintf(out, "walsh_1[%d]: %d\n", v, c)
		}
		cover, err := f.BCF()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "primes:    %s\n", formatCover(cover))
		return nil
	},
}

// formatCover renders a cover as "v0 v1' + v2", one term per cube.
func formatCover(cover tvfunc.Cover) string {
	if len(cover) == 0 {
		return "0"
	}
	terms := make([]string, 0, len(cover))
	for _, cube := range cover {
		if len(cube) == 0 {
			terms = append(terms, "1")
			continue
		}
		lits := make([]string, 0, len(cube))
		for _, lit := range cube {
			s := fmt.Sprintf("v%d", lit.VarID)
			if lit.Neg {
				s += "'"
			}
			lits = append(lits, s)
		}
		terms = append(terms, strings.Join(lits, " "))
	}
	return strings.Join(terms, " + ")
}

func init() {
	rootCmd.AddCommand(tvfuncCmd)
	tvfuncCmd.AddCommand(tvfuncAnalyzeCmd)
}
