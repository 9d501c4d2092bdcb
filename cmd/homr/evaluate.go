package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/homr"
	"github.com/hupe1980/homr/codec"
)

type evaluateReport struct {
	Dataset      string  `json:"dataset"`
	Examples     int     `json:"examples"`
	EditDistance float64 `json:"edit_distance"`
}

func newEvaluateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a prediction file against a split",
		Long: `Score a prediction file against the gold marks of a split.

The file holds one line per example in dataset order, each line the
whitespace-separated predicted marks.

Example:
  homr evaluate --dataset dev --predictions dev_predictions.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			split, err := a.split()
			if err != nil {
				return err
			}
			c, err := a.codec()
			if err != nil {
				return err
			}
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(a.v.GetString("predictions"))
			if err != nil {
				return err
			}
			defer f.Close()

			if n := a.v.GetInt("records"); n != 0 {
				opts = append(opts, homr.WithSplitSize(split, n))
			}
			gold, err := homr.LoadSplit(cmd.Context(), split, opts...)
			if err != nil {
				return err
			}
			score, err := homr.EvaluateFile(cmd.Context(), gold, f, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c == nil {
				_, err = fmt.Fprintf(out, "HOMR edit distance: %.3f%%\n", score)
				return err
			}
			return codec.Write(out, c, evaluateReport{
				Dataset:      split.String(),
				Examples:     gold.Len(),
				EditDistance: score,
			})
		},
	}

	cmd.Flags().String("dataset", "dev", "Split to evaluate against (dev or test)")
	cmd.Flags().StringP("predictions", "p", "", "Prediction file (required)")
	cmd.Flags().Int("records", 0, "Expected number of records (0 = published split size, -1 = read to the end)")
	_ = cmd.MarkFlagRequired("predictions")
	return cmd
}
