package homr

import (
	"log/slog"
	"slices"

	"github.com/hupe1980/homr/blobstore"
	"github.com/hupe1980/homr/dataset"
	"github.com/hupe1980/homr/resource"
)

// DefaultRemoteURL is the public location of the corpus files.
const DefaultRemoteURL = "https://ufal.mff.cuni.cz/~straka/courses/npfl138/2324/datasets/"

// DefaultDataDir is where split files are cached when no directory is given.
const DefaultDataDir = "."

type options struct {
	dataDir          string
	remote           blobstore.Store
	remoteSet        bool
	datasetOpts      []dataset.Option
	rc               *resource.Controller
	logger           *Logger
	metricsCollector MetricsCollector
	splits           []Split
	sizes            map[Split]int
}

// Option configures Load and LoadSplit.
type Option func(*options)

// WithDataDir sets the directory holding the split files.
func WithDataDir(dir string) Option {
	return func(o *options) {
		o.dataDir = dir
	}
}

// WithRemote sets the store missing split files are fetched from.
// Pass nil to disable fetching; a missing file is then an error.
func WithRemote(store blobstore.Store) Option {
	return func(o *options) {
		o.remote = store
		o.remoteSet = true
	}
}

// WithDecodeOnDemand selects on-demand example construction for every split.
func WithDecodeOnDemand(enabled bool) Option {
	return WithDatasetOptions(dataset.WithDecodeOnDemand(enabled))
}

// WithDatasetOptions forwards options to every dataset.Open call.
func WithDatasetOptions(opts ...dataset.Option) Option {
	return func(o *options) {
		o.datasetOpts = append(o.datasetOpts, opts...)
	}
}

// WithResourceController bounds parallel loads, memory and download bandwidth.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.rc = rc
	}
}

// WithLogger configures structured logging for load, fetch and evaluation.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithSplits restricts Load to the given splits. Repeated splits are
// loaded once.
func WithSplits(splits ...Split) Option {
	return func(o *options) {
		o.splits = make([]Split, 0, len(splits))
		for _, s := range splits {
			if !slices.Contains(o.splits, s) {
				o.splits = append(o.splits, s)
			}
		}
	}
}

// WithSplitSize overrides the expected number of records of a split.
// dataset.SizeUnknown reads the file to its end.
func WithSplitSize(s Split, n int) Option {
	return func(o *options) {
		if o.sizes == nil {
			o.sizes = make(map[Split]int)
		}
		o.sizes[s] = n
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		dataDir: DefaultDataDir,
		splits:  Splits,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if !o.remoteSet {
		store, err := blobstore.NewHTTPStore(DefaultRemoteURL)
		if err != nil {
			return o, err
		}
		o.remote = store
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	return o, nil
}

func (o options) size(s Split) int {
	if n, ok := o.sizes[s]; ok {
		return n
	}
	return s.Size()
}
