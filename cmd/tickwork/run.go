package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexGronaCW/tickwork"
	"github.com/AlexGronaCW/tickwork/internal/logging"
	"github.com/AlexGronaCW/tickwork/internal/presentation/tui"
	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/latent"
	"github.com/AlexGronaCW/tickwork/pkg/session"
)

// sampleConfig is used when no --config file is given, so the demo loop has
// something to load.
const sampleConfig = `game:
  name: demo
environment: dev
features:
  identity:
    enabled: true
    endpoint: https://identity.example.com
    region: us-west-2
  gamestate:
    enabled: true
    endpoint: https://gamestate.example.com
    region: us-west-2
`

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a demo tick loop against a client configuration",
	Long:  `Launches a config reload, a token store write, and a settings query as latent operations, then drives them from a tick loop until every one has committed.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		interval, _ := cmd.Flags().GetDuration("tick")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		tui.PrintBanner(tickwork.Version)
		printer := tui.NewPrinter()

		sm, err := session.New("", session.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing session manager: %v\n", err)
			os.Exit(1)
		}
		defer sm.Close()

		h := tickwork.NewHost(tickwork.WithLogger(logger))

		// Durable output slots. They outlive every operation below.
		reloadStatus := tickwork.Alloc[tickwork.OperationResult](h)
		reloadOutcome := tickwork.Alloc[tickwork.Outcome](h)
		reloadResult := tickwork.Alloc[session.ReloadConfigResult](h)

		tokenStatus := tickwork.Alloc[tickwork.OperationResult](h)
		tokenOutcome := tickwork.Alloc[tickwork.Outcome](h)
		tokenResult := tickwork.Alloc[tickwork.Noop](h)

		queryStatus := tickwork.Alloc[tickwork.OperationResult](h)
		queryOutcome := tickwork.Alloc[tickwork.Outcome](h)
		queryResult := tickwork.Alloc[bool](h)

		reloadReq := session.ReloadConfigRequest{Path: cfgPath}
		if cfgPath == "" {
			printer.Info("no --config given, loading built-in sample")
			reloadReq = session.ReloadConfigRequest{Contents: []byte(sampleConfig)}
		}

		// The settings query only makes sense once the reload has committed,
		// so it launches from the reload's completion continuation.
		_, err = session.ReloadConfigAsync(h.Manager(), h.Frame(), sm, "cli-reload", reloadReq,
			latent.Outputs[session.ReloadConfigResult]{Status: reloadStatus, Outcome: reloadOutcome, Result: reloadResult},
			latent.WithObserver[session.ReloadConfigRequest, session.ReloadConfigResult](func(req session.ReloadConfigRequest, partial session.ReloadConfigResult, final bool) {
				for _, f := range partial.Features {
					printer.Partial("cli-reload", f.Feature, final)
				}
			}),
			latent.WithContinuation[session.ReloadConfigRequest, session.ReloadConfigResult](func() {
				_, qerr := session.AreSettingsLoadedAsync(h.Manager(), h.Frame(), sm, "cli-query",
					session.SettingsLoadedRequest{Feature: domain.FeatureIdentity},
					latent.Outputs[bool]{Status: queryStatus, Outcome: queryOutcome, Result: queryResult},
				)
				if qerr != nil {
					fmt.Printf("Error launching settings query: %v\n", qerr)
				}
			}),
		)
		if err != nil {
			fmt.Printf("Error launching config reload: %v\n", err)
			os.Exit(1)
		}

		_, err = session.SetTokenAsync(h.Manager(), h.Frame(), sm, "cli-token",
			session.SetTokenRequest{Type: domain.TokenAccess, Value: "demo-access-token"},
			latent.Outputs[tickwork.Noop]{Status: tokenStatus, Outcome: tokenOutcome, Result: tokenResult},
		)
		if err != nil {
			fmt.Printf("Error launching token write: %v\n", err)
			os.Exit(1)
		}

		// Main loop: poll until every operation commits.
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for h.Active() > 0 {
			<-ticker.C
			h.Tick()
		}

		fmt.Println()
		printer.Outcome("cli-reload", *reloadOutcome, *reloadStatus)
		printer.Outcome("cli-token", *tokenOutcome, *tokenStatus)
		printer.Outcome("cli-query", *queryOutcome, *queryStatus)
		printer.Info(fmt.Sprintf("identity settings loaded: %t, features applied: %d",
			*queryResult, len(reloadResult.Features)))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("tick", 20*time.Millisecond, "Tick interval for the host loop")
}
