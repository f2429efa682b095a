// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

// Command tbmshell is a thin demonstration CLI around the tbm
// package: load a CSV prefix set, then query it for longest-prefix
// matches. Out of scope for the core per spec §1; grounded in the
// teacher's own cmd/main.go timing idiom plus the CSV format sketched
// in spec §6.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "tbmshell",
		Short: "demonstration shell for the tree-bitmap routing table",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newLoadCmd(), newLookupCmd())
	return root
}

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <csv-file>",
		Short: "load a prefix CSV and print per-level statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, count, err := loadTreeFromFile(args[0])
			if err != nil {
				return err
			}
			log.WithField("prefixes", count).Info("loaded tree")
			printStats(tree)
			return nil
		},
	}
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <csv-file> <addr>",
		Short: "load a prefix CSV and print the longest prefix match for addr",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := loadTreeFromFile(args[0])
			if err != nil {
				return err
			}
			return printLookup(tree, args[1])
		},
	}
}

func printStats(tree *tbmTree) {
	v4, v6 := tree.Stats()
	fmt.Println("IPv4 levels:")
	for _, l := range v4 {
		fmt.Printf("  level %d (stride %d): nodes=%d prefixes=%d pointers=%d\n",
			l.Level, l.Stride, l.Nodes, l.Prefixes, l.Pointers)
	}
	fmt.Println("IPv6 levels:")
	for _, l := range v6 {
		fmt.Printf("  level %d (stride %d): nodes=%d prefixes=%d pointers=%d\n",
			l.Level, l.Stride, l.Nodes, l.Prefixes, l.Pointers)
	}
}
