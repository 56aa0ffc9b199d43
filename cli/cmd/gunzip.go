package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reactome/releasefetch/cli/internal/output"
	"github.com/reactome/releasefetch/gunzip"
)

var gunzipWorkers int

var gunzipCmd = &cobra.Command{
	Use:   "gunzip <source[:target]>...",
	Short: "Decompress downloaded gzip files",
	Long: `Decompress one or more gzip files concurrently. The source files are kept.

Without an explicit target the ".gz" suffix is removed from the source path.`,
	Example: `  releasefetch gunzip /data/uniprot.xml.gz
  releasefetch gunzip /data/cosmic.tsv.gz:/data/cosmic/mutants.tsv --workers 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs, err := parseGunzipJobs(args)
		if err != nil {
			return err
		}

		workers := cfg.Workers
		if gunzipWorkers > 0 {
			workers = gunzipWorkers
		}

		if err := gunzip.DecompressAll(cmd.Context(), jobs, workers); err != nil {
			return err
		}

		results := make([]output.GunzipResult, len(jobs))
		for i, job := range jobs {
			results[i] = output.GunzipResult{Source: job.Source, Target: job.Target, Size: -1}
			if info, err := os.Stat(job.Target); err == nil {
				results[i].Size = info.Size()
			}
		}

		formatter := output.Get(getOutputFormat(), cmd.OutOrStdout())
		return formatter.FormatGunzipResults(results)
	},
}

func init() {
	rootCmd.AddCommand(gunzipCmd)
	gunzipCmd.Flags().IntVarP(&gunzipWorkers, "workers", "w", 0, "Number of files decompressed concurrently (default: workers from config)")
}

// parseGunzipJobs parses "source[:target]" arguments.
func parseGunzipJobs(args []string) ([]gunzip.Job, error) {
	jobs := make([]gunzip.Job, 0, len(args))
	for _, arg := range args {
		source, target, explicit := strings.Cut(arg, ":")
		if source == "" {
			return nil, fmt.Errorf("invalid argument %q: empty source", arg)
		}

		if !explicit || target == "" {
			if !strings.HasSuffix(source, ".gz") {
				return nil, fmt.Errorf("cannot derive a target for %s: no .gz suffix", source)
			}
			target = strings.TrimSuffix(source, ".gz")
		}

		jobs = append(jobs, gunzip.Job{Source: source, Target: target})
	}
	return jobs, nil
}
