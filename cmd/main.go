package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/heroes/application"
	"github.com/luca-patrignani/heroes/config"
)

func main() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("eroes", pterm.FgDarkGray.ToStyle()),
	).Render()

	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	// Create a new slog handler with the PTerm logger at the configured level
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel(cfg.LogLevel)))
	logger := slog.New(handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spinner, _ := pterm.DefaultSpinner.Start("Seating the heroes ...")
	report, err := application.NewGameOrchestrator(cfg, logger).Run(ctx)
	if err != nil {
		spinner.Fail()
		logger.Error("round failed", "error", err)
		os.Exit(1)
	}
	spinner.Success()

	pterm.Info.Printfln("Round %s, seed %d", report.RoundID, report.Seed)
	pterm.Info.Printfln("Narration head %s", report.Head)
	pterm.Print("\n")
	for _, turn := range splitTurns(report.Events()) {
		printTurn(turn)
	}
	printTable(report.Heroes)
}

func logLevel(s string) pterm.LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
