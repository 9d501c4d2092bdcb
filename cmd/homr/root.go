package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/homr"
	"github.com/hupe1980/homr/codec"
	"github.com/hupe1980/homr/resource"
)

const envPrefix = "HOMR"

// app carries the resolved configuration shared by all subcommands.
type app struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "homr",
		Short: "HOMR corpus loader and edit-distance evaluator",
		Long: `homr downloads the HOMR handwritten music recognition corpus, decodes its
TFRecord splits and scores predicted mark sequences with the normalized
edit distance.

Every flag can also be set through the environment (HOMR_DATA_DIR,
HOMR_REMOTE, ...) or a config file passed with --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.StringP("data-dir", "d", homr.DefaultDataDir, "Directory holding the split files")
	flags.String("remote", homr.DefaultRemoteURL, "Where missing files are fetched from: http(s)://, s3://bucket/prefix, minio://host/bucket/prefix or none")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Bool("decode-on-demand", false, "Rebuild examples on every access instead of materializing them")
	flags.Int64("io-limit", 0, "Download bandwidth limit in bytes per second (0 = unlimited)")
	flags.Int64("max-parallel-loads", 3, "Number of splits decoded at the same time")
	flags.String("format", "text", "Output format: text, json or go-json")

	root.AddCommand(
		newEvaluateCmd(a),
		newFetchCmd(a),
		newInspectCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return nil
}

// options translates the configuration into homr options.
func (a *app) options(cmd *cobra.Command) ([]homr.Option, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	remote, err := parseRemote(cmd.Context(), a.v.GetString("remote"))
	if err != nil {
		return nil, err
	}

	rc := resource.NewController(resource.Config{
		MaxParallelLoads:   a.v.GetInt64("max-parallel-loads"),
		IOLimitBytesPerSec: a.v.GetInt64("io-limit"),
	})

	return []homr.Option{
		homr.WithDataDir(a.v.GetString("data-dir")),
		homr.WithRemote(remote),
		homr.WithLogLevel(level),
		homr.WithDecodeOnDemand(a.v.GetBool("decode-on-demand")),
		homr.WithResourceController(rc),
	}, nil
}

// codec returns nil for text output.
func (a *app) codec() (codec.Codec, error) {
	format := a.v.GetString("format")
	if format == "" || format == "text" {
		return nil, nil
	}
	if format == "json" {
		format = codec.Default.Name()
	}
	c, ok := codec.ByName(format)
	if !ok {
		return nil, fmt.Errorf("unknown --format %q (want text or one of %s)", format, strings.Join(codec.Names(), ", "))
	}
	return c, nil
}

func (a *app) split() (homr.Split, error) {
	return homr.ParseSplit(a.v.GetString("dataset"))
}
