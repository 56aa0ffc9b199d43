package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/reactome/releasefetch"
	"github.com/reactome/releasefetch/cli/internal/auth"
	"github.com/reactome/releasefetch/cli/internal/output"
	"github.com/reactome/releasefetch/internal/config"
	"github.com/reactome/releasefetch/internal/metrics"
	"github.com/reactome/releasefetch/log"
)

var (
	fetchWorkers     int
	fetchMetricsFile string
	fetchLockDir     string
	fetchLogDir      string
)

// fetchJob is one configured source and the retriever built for it.
type fetchJob struct {
	name      string
	source    config.Source
	retriever releasefetch.DataRetriever
	// logger replaces the context logger while the job runs, when set.
	logger log.Logger
}

var fetchCmd = &cobra.Command{
	Use:   "fetch [source...]",
	Short: "Retrieve the configured data files",
	Long: `Retrieve every configured source, or only the named ones.

A file whose local copy is younger than the source's max_age is left alone.
Sources are retrieved concurrently and independently: one failing source does
not stop the others, but makes the command exit with an error.`,
	Example: `  # Retrieve everything declared in the configuration
  releasefetch fetch --config releasefetch.properties

  # Retrieve two sources and write Prometheus metrics for node_exporter
  releasefetch fetch uniprot orphanet --config releasefetch.yaml --metrics-file /var/lib/node_exporter/releasefetch.prom`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		names, err := selectSources(cfg, args)
		if err != nil {
			return err
		}

		logDir := cfg.LogDir
		if fetchLogDir != "" {
			logDir = fetchLogDir
		}

		var closers []func()
		defer func() {
			for _, closeLog := range closers {
				closeLog()
			}
		}()

		jobs := make([]fetchJob, 0, len(names))
		for _, name := range names {
			job := fetchJob{name: name, source: cfg.Sources[name]}

			sourceLogger := logger
			if logDir != "" && zapLogger != nil {
				zl, closeLog, err := openSourceLog(zapLogger, logDir, name)
				if err != nil {
					return err
				}
				closers = append(closers, closeLog)
				sourceLogger = log.With(log.NewZapLogger(zl), "run_id", runID)
				job.logger = sourceLogger
			}

			retriever, err := newRetriever(name, job.source, sourceLogger)
			if err != nil {
				return fmt.Errorf("source %s: %w", name, err)
			}
			job.retriever = retriever
			jobs = append(jobs, job)
		}

		workers := cfg.Workers
		if fetchWorkers > 0 {
			workers = fetchWorkers
		}

		recorder := metrics.NewRecorder()
		results := runFetches(ctx, jobs, workers, recorder)

		metricsFile := cfg.MetricsFile
		if fetchMetricsFile != "" {
			metricsFile = fetchMetricsFile
		}
		if metricsFile != "" {
			if err := recorder.WriteTextfile(metricsFile); err != nil {
				logger.Error("Failed to write metrics", "path", metricsFile, "error", err)
			}
		}

		formatter := output.Get(getOutputFormat(), cmd.OutOrStdout())
		if err := formatter.FormatFetchResults(results); err != nil {
			return err
		}

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d sources failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().IntVarP(&fetchWorkers, "workers", "w", 0, "Number of sources retrieved concurrently (default: workers from config)")
	fetchCmd.Flags().StringVar(&fetchMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file (default: metrics_file from config)")
	fetchCmd.Flags().StringVar(&fetchLockDir, "lock-dir", "", "Hold a <source>.lock file in this directory while retrieving")
	fetchCmd.Flags().StringVar(&fetchLogDir, "log-dir", "", "Also log each source to <source>.log in this directory (default: log_dir from config)")
}

// selectSources returns the requested source names, or every configured one.
func selectSources(c *config.Config, requested []string) ([]string, error) {
	if len(requested) == 0 {
		names := c.SourceNames()
		if len(names) == 0 {
			return nil, fmt.Errorf("no sources configured")
		}
		return names, nil
	}

	for _, name := range requested {
		if _, ok := c.Sources[name]; !ok {
			return nil, fmt.Errorf("unknown source %q", name)
		}
	}
	return requested, nil
}

// newRetriever builds the retriever for one source. Credentials are taken from
// the source, then the environment, then the global flags.
func newRetriever(name string, source config.Source, logger log.Logger) (releasefetch.DataRetriever, error) {
	opts := []releasefetch.Option{
		releasefetch.WithName(name),
		releasefetch.WithSource(source.URL),
		releasefetch.WithDestination(source.Destination),
		releasefetch.WithMaxAge(source.MaxAge),
		releasefetch.WithPassiveFTP(source.PassiveFTP),
		releasefetch.WithLogger(logger),
	}
	if source.Timeout > 0 {
		opts = append(opts, releasefetch.WithTimeout(source.Timeout))
	}
	if source.Retries != nil {
		opts = append(opts, releasefetch.WithRetries(*source.Retries))
	}
	if fetchLockDir != "" {
		opts = append(opts, releasefetch.WithLockFile(filepath.Join(fetchLockDir, name+".lock")))
	}

	creds := &auth.Config{Username: source.Username, Password: source.Password}
	env := auth.FromEnvironment(name)
	creds.Merge(env.Username, env.Password)
	creds.Merge(username, password)
	opts = append(opts, creds.ToOptions()...)

	if source.Kind == config.KindCOSMIC {
		return releasefetch.NewCOSMICRetriever(opts...)
	}
	return releasefetch.NewFileRetriever(opts...)
}

// runFetches retrieves every job with at most workers in flight. A failing job
// does not cancel the others; its error is reported in its result.
func runFetches(ctx context.Context, jobs []fetchJob, workers int, recorder *metrics.Recorder) []output.FetchResult {
	results := make([]output.FetchResult, len(jobs))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, job := range jobs {
		g.Go(func() error {
			jobCtx := ctx
			if job.logger != nil {
				jobCtx = log.WithContextLogger(ctx, job.logger)
			}

			start := time.Now()
			err := job.retriever.FetchData(jobCtx)
			finished := time.Now()

			size := int64(-1)
			if info, statErr := os.Stat(job.source.Destination); statErr == nil {
				size = info.Size()
			}

			recorder.ObserveFetch(job.name, err, finished.Sub(start), size, finished)
			results[i] = output.FetchResult{
				Source:      job.name,
				URL:         job.source.URL,
				Destination: job.source.Destination,
				Outcome:     metrics.Outcome(err),
				Size:        size,
				Duration:    finished.Sub(start),
				Err:         err,
			}
			return nil
		})
	}

	// Every job reports through its result, so Wait never returns an error.
	_ = g.Wait()
	return results
}
