package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/homr"
	"github.com/hupe1980/homr/codec"
	"github.com/hupe1980/homr/dataset"
)

type featureSummary struct {
	Key      string `json:"key"`
	Kind     string `json:"kind"`
	Elements int    `json:"elements"`
}

type inspectReport struct {
	Source   string           `json:"source"`
	Examples int              `json:"examples"`
	Features []featureSummary `json:"features"`
}

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the features of a split or record file",
		Long: `Decode a split (or any TFRecord file of tf.train.Example records) and print
the number of examples and, per feature key, its kind and element count.

Example:
  homr inspect --dataset dev
  homr inspect --file other.tfrecord.gz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}

			var (
				ds     *dataset.Dataset
				source string
			)
			if path := a.v.GetString("file"); path != "" {
				ds, err = dataset.Open(cmd.Context(), path, dataset.SizeUnknown, dataset.WithDecodeOnDemand(true))
				source = path
			} else {
				var split homr.Split
				split, err = a.split()
				if err != nil {
					return err
				}
				var opts []homr.Option
				opts, err = a.options(cmd)
				if err != nil {
					return err
				}
				ds, err = homr.LoadSplit(cmd.Context(), split, append(opts,
					homr.WithDecodeOnDemand(true),
					homr.WithSplitSize(split, dataset.SizeUnknown),
				)...)
				source = split.String()
			}
			if err != nil {
				return err
			}

			report := summarize(source, ds)
			out := cmd.OutOrStdout()
			if c != nil {
				return codec.Write(out, c, report)
			}

			fmt.Fprintf(out, "%s: %d examples\n", report.Source, report.Examples)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tKIND\tELEMENTS")
			for _, f := range report.Features {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", f.Key, f.Kind, f.Elements)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().String("dataset", "dev", "Split to inspect")
	cmd.Flags().StringP("file", "f", "", "Inspect this record file instead of a split")
	return cmd
}

func summarize(source string, ds *dataset.Dataset) inspectReport {
	store := ds.Store()
	report := inspectReport{Source: source, Examples: ds.Len()}
	for _, key := range store.Keys() {
		f, _ := store.Feature(key)
		report.Features = append(report.Features, featureSummary{
			Key:      key,
			Kind:     f.Kind().String(),
			Elements: f.Len(),
		})
	}
	return report
}
