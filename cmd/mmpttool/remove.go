package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidchain/mmpt/trie"
)

func newRemoveCmd() *cobra.Command {
	var kvs []string
	var key string
	cmd := &cobra.Command{
		Use:   "remove --kv k=v [--kv k=v ...] --key k",
		Short: "Build a trie, remove one key, and print the resulting root hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				return errors.New("mmpttool: --key is required")
			}
			t, err := buildTrie(kvs)
			if err != nil {
				return err
			}
			prev, err := t.Remove([]byte(key))
			if errors.Is(err, trie.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not found, trie unchanged\n", key)
			} else if err != nil {
				return err
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s (was %s)\n", key, prev)
			}
			root, err := t.ComputeHash()
			if err != nil {
				return fmt.Errorf("mmpttool: computing root hash: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "root: %s\n", root.Hex())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&kvs, "kv", nil, "a key=value pair; repeatable")
	cmd.Flags().StringVar(&key, "key", "", "the key to remove")
	return cmd
}
