package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInsertCmd() *cobra.Command {
	var kvs []string
	cmd := &cobra.Command{
		Use:   "insert --kv k=v [--kv k=v ...]",
		Short: "Build a trie from key=value pairs and print its root hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTrie(kvs)
			if err != nil {
				return err
			}
			root, err := t.ComputeHash()
			if err != nil {
				return fmt.Errorf("mmpttool: computing root hash: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "root: %s\nentries: %d\n", root.Hex(), len(kvs))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&kvs, "kv", nil, "a key=value pair; repeatable")
	return cmd
}
