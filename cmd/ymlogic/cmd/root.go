// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package cmd implements the ymlogic command line tool, a thin front
// door over the tvfunc, npn, and bdd packages for poking at Boolean
// functions from a shell: parse a truth table, classify it, compute
// its NPN canonical form, or render its BDD as Graphviz.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yusuke-matsunaga/ym-logic/internal/ymlog"
)

var (
	verbose bool
	cfgFile string
	cfg     *Config
)

var rootCmd = &cobra.Command{
	Use:   "ymlogic",
	Short: "Boolean function manipulation from the command line",
	Long: `ymlogic exposes the truth-table, NPN-canonicalization, and BDD
engines of this library as shell commands.

Truth tables are given as strings of '0'/'1' characters whose length
is a power of two; character i is the function value on the input
assignment whose bits spell out i, input 0 in the least significant
position.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			ymlog.SetLevel(zerolog.DebugLevel)
		}
		c, err := LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

// Execute runs the root command, exiting nonzero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./ymlogic.yaml)")
}
