package main

import (
	"fmt"

	"github.com/npillmayer/boxtree/dom"
	"github.com/npillmayer/boxtree/domdbg"
	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Render a markup file and print the resulting box tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), dom.Dump(t.Root()))
			return nil
		},
	}
}

func (a *app) queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query FILE SELECTOR",
		Short: "Render a markup file and list the boxes matching a selector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			nodes, err := t.Root().QueryAll(args[1])
			if err != nil {
				return err
			}
			for _, n := range nodes {
				fmt.Fprintf(cmd.OutOrStdout(), "%v\t%v\n", n, n.Bounds().MarginRect)
			}
			return nil
		},
	}
}

func (a *app) dotCmd() *cobra.Command {
	var groups []string
	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Render a markup file and print the box tree in GraphViz format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0])
			if err != nil {
				return err
			}
			return domdbg.ToGraphViz(t.Root(), cmd.OutOrStdout(), groups)
		},
	}
	cmd.Flags().StringSliceVar(&groups, "groups", nil, "property groups to include (Box, Spacing, Flow, Paint)")
	return cmd
}
