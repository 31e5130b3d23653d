package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucidchain/mmpt/trie"
)

func newGetCmd() *cobra.Command {
	var kvs []string
	var key string
	cmd := &cobra.Command{
		Use:   "get --kv k=v [--kv k=v ...] --key k",
		Short: "Build a trie from key=value pairs and look up one key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				return errors.New("mmpttool: --key is required")
			}
			t, err := buildTrie(kvs)
			if err != nil {
				return err
			}
			value, err := t.Get([]byte(key))
			if errors.Is(err, trie.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", key)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, value)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&kvs, "kv", nil, "a key=value pair; repeatable")
	cmd.Flags().StringVar(&key, "key", "", "the key to look up")
	return cmd
}
