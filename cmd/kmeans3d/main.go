// Command kmeans3d clusters the rows of a tab-separated table by their first
// three columns and writes one cluster label per row.
//
// Usage:
//
//	kmeans3d --file points.tsv --k 4 --outfile labels.txt
//	kmeans3d -f s3://bucket/points.tsv.gz -k 4 -o s3://bucket/labels.txt --config kmeans3d.toml
//
// Exit status is 1 when loading, clustering or writing fails and 2 when the
// command line or configuration file is invalid.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hupe1980/kmeans3d"
	"github.com/hupe1980/kmeans3d/dataset"
	"github.com/hupe1980/kmeans3d/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// args holds the parsed command line.
type args struct {
	file    string
	outfile string
	config  Config
}

// flagValues receives the raw flag values before they are merged over the
// configuration file.
type flagValues struct {
	file, outfile, configPath string
	k                         uint
	seed                      int64
	maxIter                   int
	rejectNaN                 bool
	logLevel, metricsFile     string
}

// runError marks failures of the pipeline itself, as opposed to invalid
// flags or configuration.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:           "kmeans3d --file <path> --k <n> --outfile <path>",
		Short:         "Cluster the rows of a TSV table by their first three columns",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := fv.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			logger, closer, err := newLogger(a.config.Log, stderr)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			if err := execute(cmd.Context(), a, logger, stdout); err != nil {
				return &runError{err: err}
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&fv.file, "file", "f", "", "input table (path or s3://bucket/key)")
	flags.UintVarP(&fv.k, "k", "k", 0, "number of clusters")
	flags.StringVarP(&fv.outfile, "outfile", "o", "", "output label file (path or s3://bucket/key)")
	flags.StringVarP(&fv.configPath, "config", "c", "", "TOML configuration file")
	flags.Int64Var(&fv.seed, "seed", 0, "random seed (default: clock)")
	flags.IntVar(&fv.maxIter, "max-iterations", kmeans3d.DefaultMaxIterations, "iteration cap")
	flags.BoolVar(&fv.rejectNaN, "reject-nan", false, "fail when a point has a NaN coordinate")
	flags.StringVar(&fv.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&fv.metricsFile, "metrics-textfile", "", "write Prometheus metrics to this file")

	return cmd
}

// resolve merges explicitly set flags over the configuration file.
func (fv *flagValues) resolve(flags *pflag.FlagSet) (*args, error) {
	cfg := DefaultConfig()
	if fv.configPath != "" {
		var err error
		if cfg, err = LoadConfig(fv.configPath); err != nil {
			return nil, err
		}
	}

	if flags.Changed("k") {
		cfg.K = int(fv.k)
		cfg.kSet = true
	}
	if flags.Changed("seed") {
		seed := fv.seed
		cfg.Seed = &seed
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations = fv.maxIter
	}
	if flags.Changed("reject-nan") {
		cfg.RejectNaN = fv.rejectNaN
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = fv.logLevel
	}
	if flags.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = fv.metricsFile
	}

	if fv.file == "" {
		return nil, errors.New("--file is required")
	}
	if fv.outfile == "" {
		return nil, errors.New("--outfile is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &args{file: fv.file, outfile: fv.outfile, config: cfg}, nil
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = []string{}
	}

	cmd := newCommand(stdout, stderr)
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintf(stderr, "kmeans3d: %v\n", err)

	var re *runError
	if errors.As(err, &re) {
		return exitError
	}
	return exitUsage
}

func execute(ctx context.Context, a *args, logger *kmeans3d.Logger, stdout io.Writer) error {
	cfg := a.config

	in, err := parseLocation(a.file)
	if err != nil {
		return err
	}
	out, err := parseLocation(a.outfile)
	if err != nil {
		return err
	}

	src, err := openStore(ctx, in, cfg.ObjectStore)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(ctx, src, in.name, dataset.WithLogger(logger.Logger))
	if err != nil {
		return err
	}

	rows, cols := ds.Dims()
	fmt.Fprintf(stdout, "Loaded %d rows × %d columns\n", rows, cols)

	points, err := kmeans3d.PointsFromMatrix(ds.NumericView(model.Dim))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opts := []kmeans3d.Option{
		kmeans3d.WithLogger(logger),
		kmeans3d.WithRejectNaN(cfg.RejectNaN),
	}
	if cfg.Metrics.Textfile != "" {
		opts = append(opts, kmeans3d.WithMetricsCollector(newPromCollector(reg)))
	}
	if cfg.Seed != nil {
		opts = append(opts, kmeans3d.WithSeed(*cfg.Seed))
	}

	res, err := kmeans3d.Run(points, cfg.K, cfg.MaxIterations, opts...)
	if cfg.Metrics.Textfile != "" {
		if werr := prometheus.WriteToTextfile(cfg.Metrics.Textfile, reg); werr != nil {
			logger.Warn("writing metrics failed", "file", cfg.Metrics.Textfile, "error", werr)
		}
	}
	if err != nil {
		return err
	}

	logger.Info("cluster sizes", "sizes", res.Sizes())

	data, err := res.Assignment.MarshalText()
	if err != nil {
		return err
	}

	dst, err := openStore(ctx, out, cfg.ObjectStore)
	if err != nil {
		return err
	}
	if err := dst.Put(ctx, out.name, data); err != nil {
		return fmt.Errorf("write %s: %w", a.outfile, err)
	}

	fmt.Fprintf(stdout, "Assigned %d points into %d clusters\n", len(res.Assignment), res.K())
	return nil
}
