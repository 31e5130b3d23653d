package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHashCmd() *cobra.Command {
	var kvs []string
	var parallel bool
	cmd := &cobra.Command{
		Use:   "hash --kv k=v [--kv k=v ...]",
		Short: "Build a trie from key=value pairs and print its root hash and timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTrie(kvs)
			if err != nil {
				return err
			}

			start := time.Now()
			var root fmt.Stringer
			if parallel {
				h, err := t.ComputeHashParallel(context.Background())
				if err != nil {
					return fmt.Errorf("mmpttool: computing root hash: %w", err)
				}
				root = h
			} else {
				h, err := t.ComputeHash()
				if err != nil {
					return fmt.Errorf("mmpttool: computing root hash: %w", err)
				}
				root = h
			}
			elapsed := time.Since(start)
			fmt.Fprintf(cmd.OutOrStdout(), "root: %s\nelapsed: %s\n", root, elapsed)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&kvs, "kv", nil, "a key=value pair; repeatable")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "use ComputeHashParallel instead of ComputeHash")
	return cmd
}
