package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var kvs []string
	cmd := &cobra.Command{
		Use:   "audit --kv k=v [--kv k=v ...]",
		Short: "Build a trie from key=value pairs and check its structural invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTrie(kvs)
			if err != nil {
				return err
			}
			if err := t.Audit(); err != nil {
				return fmt.Errorf("mmpttool: invariant violations:\n%w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "audit: ok")
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&kvs, "kv", nil, "a key=value pair; repeatable")
	return cmd
}
