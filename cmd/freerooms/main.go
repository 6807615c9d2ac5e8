// Command freerooms prints the meeting rooms that are free for a time window today
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navikt/freerooms/internal/config"
	"github.com/navikt/freerooms/internal/logging"
	"github.com/navikt/freerooms/internal/report"
	"github.com/navikt/freerooms/internal/repository/memory"
	"github.com/navikt/freerooms/internal/scraper"
	"github.com/navikt/freerooms/internal/service"
	"github.com/navikt/freerooms/internal/timearg"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type options struct {
	start      string
	end        string
	format     string
	configFile string
	url        string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("freerooms", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.start, "start", "", "start of the window as HH:MM (default now)")
	fs.StringVar(&opts.start, "s", "", "shorthand for --start")
	fs.StringVar(&opts.end, "end", "", "end of the window as HH:MM (default one hour after start)")
	fs.StringVar(&opts.end, "e", "", "shorthand for --end")
	fs.StringVar(&opts.format, "format", string(report.FormatText), "output format: text or csv")
	fs.StringVar(&opts.configFile, "config", config.GetProviderFile(), "YAML provider profile")
	fs.StringVar(&opts.url, "url", "", "timeline page to scrape")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(ctx context.Context, args []string, now time.Time, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	start, end, err := timearg.ResolveWindow(opts.start, opts.end, now)
	if err != nil {
		return err
	}

	logger, err := logging.New(config.GetLogConfig())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	provider := config.GetProviderConfig()
	if opts.configFile != "" {
		provider, err = config.LoadProviderFile(opts.configFile, provider)
		if err != nil {
			return err
		}
	}
	if opts.url != "" {
		provider.URL = opts.url
	}
	if err := provider.Validate(); err != nil {
		return err
	}

	logger.Debug("looking up free rooms",
		zap.String("url", provider.URL),
		zap.Time("start", start),
		zap.Time("end", end))

	// A single run has no use for a shared snapshot
	repo := memory.NewRepository(0)
	locale := language.Make(config.GetServerConfig().Locale)
	svc := service.NewRoomService(scraper.New(provider, logger), repo, logger, locale)

	rooms, err := svc.FreeRooms(ctx, start, end)
	if err != nil {
		return err
	}

	return report.Write(stdout, format, start, end, rooms)
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "freerooms: failed to load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], time.Now(), os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "freerooms: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
