package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/reactome/releasefetch/cli/internal/output"
	"github.com/reactome/releasefetch/ensembl"
	"github.com/reactome/releasefetch/internal/metrics"
)

var (
	ensemblTimeout     time.Duration
	ensemblMetricsFile string
)

var ensemblCmd = &cobra.Command{
	Use:   "ensembl <url>",
	Short: "Send one rate-limited request to the Ensembl REST service",
	Long: `Send a GET request to the Ensembl REST service and follow its rate-limit
signals: Retry-After waits, gateway timeouts and the remaining request quota.

The command prints the terminal response. It fails when the service keeps
asking to wait, answers with a status other than 200, or sends a header that
cannot be parsed.`,
	Example: `  releasefetch ensembl "https://rest.ensembl.org/xrefs/id/ENSG00000157764?content-type=application/json"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		url := args[0]

		client, err := ensembl.NewClient(
			ensembl.WithHTTPClient(&http.Client{Timeout: ensemblTimeout}),
			ensembl.WithClientLogger(logger),
		)
		if err != nil {
			return err
		}

		result, err := client.Get(ctx, url)
		if err != nil {
			return err
		}

		remaining := ensembl.RequestsRemaining()
		if ensemblMetricsFile != "" {
			recorder := metrics.NewRecorder()
			recorder.SetEnsemblRemaining(remaining)
			if err := recorder.WriteTextfile(ensemblMetricsFile); err != nil {
				logger.Error("Failed to write metrics", "path", ensemblMetricsFile, "error", err)
			}
		}

		formatter := output.Get(getOutputFormat(), cmd.OutOrStdout())
		if err := formatter.FormatEnsemblResult(url, result, remaining); err != nil {
			return err
		}

		if result.Status != http.StatusOK {
			return fmt.Errorf("ensembl answered %d", result.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ensemblCmd)
	ensemblCmd.Flags().DurationVar(&ensemblTimeout, "timeout", time.Minute, "Timeout of each request")
	ensemblCmd.Flags().StringVar(&ensemblMetricsFile, "metrics-file", "", "Write the remaining quota as a Prometheus metric to this file")
}
