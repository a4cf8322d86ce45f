package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/st3v3nmw/baker/internal/blocklist"
	"github.com/st3v3nmw/baker/internal/config"
	"github.com/st3v3nmw/baker/internal/lists"
	"github.com/st3v3nmw/baker/internal/types"
	"github.com/st3v3nmw/baker/pkg/ids"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("baker", flag.ContinueOnError)
	input := flags.String("i", "", "File of source URLs, one per line")
	output := flags.String("o", "", "Output file (default \""+config.DefaultOutputPath+"\")")
	format := flags.String("format", "", "Output format: hosts, domains or rpz (default \"hosts\")")

	selected := make(map[types.Category]*bool, len(types.AllCategories))
	for _, category := range types.AllCategories {
		selected[category] = flags.Bool(string(category), false, fmt.Sprintf("Include the bundled %s sources", category))
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 0 {
		flags.Usage()
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	// Read config
	config.All = config.Default()
	if configFile, ok := lookupEnv("CONFIG_FILE"); ok {
		if err := config.Read(configFile); err != nil {
			return err
		}
	}

	if *output != "" {
		config.All.Output.Path = *output
	}
	if *format != "" {
		config.All.Output.Format = types.OutputFormat(*format)
	}
	if err := config.All.Validate(); err != nil {
		return err
	}

	if err := setupLogging(config.All.Log); err != nil {
		return err
	}

	// Sources
	var urls []string
	if *input != "" {
		fileURLs, err := lists.FromFile(*input)
		if err != nil {
			return err
		}
		urls = append(urls, fileURLs...)
	}

	var categories []types.Category
	for _, category := range types.AllCategories {
		if *selected[category] {
			categories = append(categories, category)
		}
	}
	urls = append(urls, lists.FromCategories(categories)...)
	urls = append(urls, config.All.Sources...)
	urls = lists.Unique(urls)

	slog.Info("Consolidating blocklists", "sources", len(urls), "categories", categories)

	// Fetch, parse & dedupe
	set := blocklist.NewSet()
	fetcher := lists.NewHTTPFetcher(config.All.Fetch.Timeout, config.All.Fetch.UserAgent)
	stats := lists.Consolidate(context.Background(), fetcher, urls, set)

	slog.Info(
		"Sources processed",
		"sources", stats.Sources,
		"failed", stats.Failed,
		"domains", stats.Domains,
		"overlap", set.Overlap(),
		"duration", stats.Duration.Round(time.Millisecond),
	)

	// Write
	n, err := blocklist.WriteFile(config.All.Output.Path, set, config.All.Output.Format)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "Wrote %d unique domains to %s\n", n, config.All.Output.Path)
	return err
}

func setupLogging(conf config.LogConfig) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch conf.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	runID, err := ids.NewRunID(time.Now())
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(handler).With("run", runID.String()))
	return nil
}

func lookupEnv(envVar string) (string, bool) {
	return os.LookupEnv(fmt.Sprintf("BAKER_%s", envVar))
}
