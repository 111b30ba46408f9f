// Copyright 2026 The TagServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the tag classification server and CLI [DBG] application.

TagServe classifies and reorders comma-separated prompt tags against a
reference vocabulary loaded from a CSV dataset. It can operate as a
MessagePack IPC server for integration with prompt editors, or as a CLI
application for testing and debugging.

The vocabulary is loaded once at startup: dataset rows become tag records, a
fixed set of synthetic count/quality tags is overlaid with top sort
priority, and lookup indices are derived from the result. All classify,
arrange and complete operations afterwards run against that immutable
snapshot, so concurrent requests need no locking.

# Usage

Start the server with default settings:

	tagserve

Use a custom dataset and enable debug mode:

	tagserve -dataset /path/to/tags.csv -d

Run in CLI mode for interactive testing:

	tagserve -c -limit 10

The dataset is comma-separated text with columns id, category, post_count
and aliases, header row ignored. The aliases cell may be empty, a single
value, or a quoted comma-separated list.

# Configuration

Runtime configuration is managed through a TOML file:

	[server]
	max_input_len = 8192
	default_limit = 10
	max_limit = 64

	[dataset]
	path = "data/tags.csv"
	inject_synthetics = true

	[cli]
	notate_artists = true
	default_limit = 10

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests select
an op and are processed synchronously with microsecond timing information
included in responses.

Send a classify request:

	{"id": "req1", "op": "classify", "text": "solo, 1girl, banana"}

Receive labeled spans in canonical category order:

	{"id": "req1", "s": [{"t": "1girl", "l": "tag"}, ...], "c": 5, "t": 85}

Arrange requests return the reordered prompt as plain text, and complete
requests return canonical tags for a prefix ranked by post count.

# CLI Mode

CLI mode reads tag lists from stdin and prints each term colored by its
classification (green tag, orange alias, gray unknown), in the rearranged
order a classify request would produce. Prefixing a line with ':c ' queries
tag completion instead.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/maruchi/tagserve/internal/cli"
	"github.com/maruchi/tagserve/internal/logger"
	"github.com/maruchi/tagserve/internal/utils"
	"github.com/maruchi/tagserve/pkg/config"
	"github.com/maruchi/tagserve/pkg/prompt"
	"github.com/maruchi/tagserve/pkg/server"
	"github.com/maruchi/tagserve/pkg/vocabulary"
)

const (
	Version = "0.3.0"
	AppName = "tagserve"
	gh      = "https://github.com/maruchi/tagserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	datasetPath := flag.String("dataset", "", "Path to the tag dataset CSV (overrides config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Number of completion suggestions to return (0 uses config default)")
	noArtists := flag.Bool("no-artist", false, "Disable the artist: prefix on rearranged artist tags")
	noInject := flag.Bool("no-inject", false, "Skip synthetic tag injection (DBG only) - dataset categories are used as-is")

	flag.Parse()

	if *showVersion {
		vlog := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		vlog.SetStyles(styles)

		vlog.Print("")
		vlog.Print("[ TagServe ] Classifies and rearranges prompt tags!")
		vlog.Print("", "version", Version)
		vlog.Print("")
		vlog.Print("use -h or --help to see available options")
		vlog.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config at: %s", cfgPath)
	}

	dataset := cfg.Dataset.Path
	if *datasetPath != "" {
		dataset = *datasetPath
	}
	resolvedDataset, err := utils.ResolveDatasetPath(dataset)
	if err != nil {
		log.Fatalf("Failed to resolve dataset: %v", err)
	}
	log.Debugf("Using dataset at: %s", resolvedDataset)

	vocab, err := vocabulary.Load(resolvedDataset)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	if cfg.Dataset.InjectSynthetics && !*noInject {
		vocab = vocabulary.InjectSynthetics(vocab)
	}
	idx := vocabulary.BuildIndex(vocab)
	engine := prompt.NewEngine(idx, cfg.CLI.NotateArtists && !*noArtists)

	if *cliMode {
		suggestLimit := *limit
		if suggestLimit < 1 {
			suggestLimit = cfg.CLI.DefaultLimit
		}
		inputHandler := cli.NewInputHandler(engine, cfg.Server.MaxInputLen, suggestLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	srv := server.NewServer(engine, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
