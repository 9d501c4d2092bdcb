package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/homr"
	"github.com/hupe1980/homr/codec"
)

func newFetchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download missing split files",
		Long: `Download the split files that are not yet present in the data directory.

Example:
  homr fetch --data-dir ./data
  homr fetch --dataset dev --remote s3://my-bucket/homr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}
			if name := a.v.GetString("dataset"); name != "" {
				split, err := homr.ParseSplit(name)
				if err != nil {
					return err
				}
				opts = append(opts, homr.WithSplits(split))
			}

			paths, err := homr.Fetch(cmd.Context(), opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c != nil {
				return codec.Write(out, c, paths)
			}
			for _, p := range paths {
				if _, err := fmt.Fprintln(out, p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().String("dataset", "", "Only fetch this split (default all)")
	return cmd
}
