package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpersona/internal/cli"
	"github.com/zarlcorp/zpersona/internal/geoip"
	"github.com/zarlcorp/zpersona/internal/identity"
	"github.com/zarlcorp/zpersona/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpersona"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	if err := runTUI(ctx); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zpersona %s\n", version)
	case "email":
		cli.CmdEmail()
	case "identity":
		cli.CmdIdentity(os.Args[2:])
	case "countries":
		cli.CmdCountries()
	case "domains":
		cli.CmdDomains()
	case "list":
		cli.CmdList(os.Args[2:])
	case "forget":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: zpersona forget <email>")
			os.Exit(1)
		}
		cli.CmdForget(os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "zpersona: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI(ctx context.Context) error {
	dataDir := cli.DataDir()
	gen := identity.New()
	firstRun := cli.IsFirstRun(dataDir)
	detected := detectCountry(ctx)

	m := tui.New(version, dataDir, gen, firstRun, detected)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}

// detectCountry asks the geolocation service for the local country code.
// Failures are not fatal, the TUI falls back to the configured default.
func detectCountry(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	code, err := geoip.NewClient().CountryCode(ctx)
	if err != nil {
		slog.Debug("country detection failed", "err", err)
		return ""
	}
	return code
}
