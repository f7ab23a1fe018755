// Package cli provides the command-line interface for the strategist.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"strategist/internal/agents"
	"strategist/internal/config"
	"strategist/internal/dataflows"
	"strategist/internal/models"
	"strategist/internal/server"
	"strategist/internal/service"
	"strategist/pkg/logger"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "strategist",
		Short: "AI stock strategist",
		Long: `Strategist produces an AI-written investment report for a stock ticker,
with a target price and stop-loss extracted from the report and drawn on a
candlestick chart. Run the web UI with "strategist serve" or a one-shot
terminal analysis with "strategist analyze TICKER".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port, _ := cmd.Flags().GetInt("port"); port != 0 {
				cfg.Port = port
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.DevMode})

			svc, err := buildPipeline(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			srv := server.New(cfg, svc, log)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()
			log.Info().Int("port", cfg.Port).Msg("Web UI ready")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().Int("port", 0, "Listen port (overrides PORT)")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [TICKER]",
		Short: "Run one analysis in the terminal",
		Long: `Run the full analysis pipeline for a ticker and print the report.
Example: strategist analyze NVDA --risk "High risk"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.New(logger.Config{Level: "warn", Pretty: true})

			svc, err := buildPipeline(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}

			riskFlag, _ := cmd.Flags().GetString("risk")
			req := models.AnalysisRequest{
				Ticker: args[0],
				Risk:   models.ParseRiskPreference(riskFlag),
			}

			fmt.Println(progressStyle.Render(fmt.Sprintf("Analyzing %s (%s)...", dataflows.NormalizeSymbol(req.Ticker), req.Risk)))

			res, err := svc.Run(cmd.Context(), req)
			if err != nil {
				return err
			}

			printResult(res)
			return nil
		},
	}

	cmd.Flags().String("risk", string(models.RiskMid), `Risk preference: "Lowest risk", "Mid risk" or "High risk"`)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("strategist v1.0.0")
		},
	}
}

// buildPipeline wires the market data client, the search client and the
// analyst agent into the analysis service.
func buildPipeline(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*service.Analysis, error) {
	yahoo := dataflows.NewYahooClient()
	serper := dataflows.NewSerperClient(cfg.SerperAPIKey)

	gen, err := agents.NewStrategist(ctx, cfg, yahoo, serper, log)
	if err != nil {
		return nil, err
	}

	return service.New(gen, yahoo, cfg.CacheTTL, cfg.LookbackDays, log), nil
}
