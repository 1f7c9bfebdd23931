// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yusuke-matsunaga/ym-logic/bdd"
	"github.com/yusuke-matsunaga/ym-logic/ddcore"
	"github.com/yusuke-matsunaga/ym-logic/tvfunc"
)

var (
	dotOutput  string
	dotDashInv bool
)

var bddCmd = &cobra.Command{
	Use:   "bdd",
	Short: "Decision-diagram construction and rendering",
}

var bddDotCmd = &cobra.Command{
	Use:   "dot <truth-table>",
	Short: "Build the BDD of a function and emit it as Graphviz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := tvfunc.FromString(args[0])
		if err != nil {
			return err
		}
		m := bdd.New([]ddcore.Option{
			ddcore.WithNodeSize(cfg.NodeSize),
			ddcore.WithCacheSize(cfg.CacheSize),
			ddcore.WithGCThreshold(cfg.GCThreshold),
		})
		for i := 0; i < f.InputNum(); i++ {
			m.NewVariable()
		}
		root, err := f.ToBDD(m)
		if err != nil {
			return err
		}
		opts := bdd.DotOptions{DashComplement: dotDashInv}
		return m.GenDotFile(dotOutput, []bdd.Edge{root}, opts)
	},
}

func init() {
	rootCmd.AddCommand(bddCmd)
	bddCmd.AddCommand(bddDotCmd)
	bddDotCmd.Flags().StringVarP(&dotOutput, "output", "o", "-", "output file, or - for stdout")
	bddDotCmd.Flags().BoolVar(&dotDashInv, "mark-complement", false, "draw complemented edges with a distinct arrowhead")
}
