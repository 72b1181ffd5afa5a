package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/naka-gawa/npm-pkg-stats/internal/config"
	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
	"github.com/naka-gawa/npm-pkg-stats/internal/gateway"
	"github.com/naka-gawa/npm-pkg-stats/internal/render"
	"github.com/naka-gawa/npm-pkg-stats/internal/usecase"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// colorEnabled reports whether table headers written to w are colored. Color
// is only used on a terminal and never when noColor is set.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	verbose, _ := cmd.Flags().GetBool("verbose")
	output, _ := cmd.Flags().GetString("output")
	noColor, _ := cmd.Flags().GetBool("no-color")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	if output != outputTable && output != outputJSON {
		return fmt.Errorf("invalid --output %q: must be %q or %q", output, outputTable, outputJSON)
	}

	// The token is checked here, before any gateway exists.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Inject dependencies and run the main business logic.
	httpClient := gateway.NewHTTPClient(gateway.WithTimeout(cfg.HTTPTimeout))
	registry := gateway.NewNPMGateway(httpClient, gateway.NPMEndpoints{
		Registry:  cfg.RegistryURL,
		Downloads: cfg.DownloadsURL,
		Bundle:    cfg.BundleURL,
	}, logger)
	githubGateway, err := gateway.NewGitHubGateway(cfg.GraphQLURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	aggregator := usecase.NewAggregator(registry, githubGateway, logger)

	results, err := aggregator.GetAllStats(ctx, cfg.Token, args)
	if err != nil {
		return err
	}

	records := make([]*domain.Record, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			logger.Error("failed to collect stats", "package", r.Package, "err", r.Err)
			failed++
			continue
		}
		records = append(records, r.Record)
	}

	out := cmd.OutOrStdout()
	renderer := render.NewRenderer(colorEnabled(out, noColor))
	switch output {
	case outputJSON:
		err = renderer.RenderJSON(out, records)
	default:
		err = renderer.Render(out, render.Build(records, len(args)))
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("failed to collect stats for %d of %d packages", failed, len(args))
	}
	return nil
}
