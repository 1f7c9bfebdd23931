// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yusuke-matsunaga/ym-logic/npn"
	"github.com/yusuke-matsunaga/ym-logic/tvfunc"
)

var npnCmd = &cobra.Command{
	Use:   "npn",
	Short: "NPN canonicalization",
}

var npnCanonCmd = &cobra.Command{
	Use:   "canon <truth-table>",
	Short: "Print the NPN canonical representative of a function",
	Long: `canon computes the canonical form of the NPN equivalence class of the
given function: independent inputs are projected away, then inputs are
permuted and complemented (and possibly the output complemented) to
reach the class's distinguished representative. Two functions are NPN
equivalent exactly when canon prints the same table for both.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := tvfunc.FromString(args[0])
		if err != nil {
			return err
		}
		canon, maps, err := npn.NewEngine().Canonical(f)
		if err != nil {
			return err
		}
		s, err := canon.Str(2)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "canonical: %s\n", s)
		fmt.Fprintf(out, "inputs:    %d\n", canon.InputNum())
		fmt.Fprintf(out, "maps:      %d\n", len(maps))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(npnCmd)
	npnCmd.AddCommand(npnCanonCmd)
}
