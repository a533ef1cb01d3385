/*
Trieserve is an in-memory autocomplete index over (word, weight) pairs.

It stores words in a weighted prefix tree and answers exact membership,
deletion and ranked top-k prefix completion, tracking word, node and
height statistics as it goes.

# Usage

Run the interactive command loop (the default mode):

	trieserve

Preload a dictionary and enable debug logging:

	trieserve -load words.csv -d

Run as a msgpack IPC server over stdin/stdout:

	trieserve -ipc

# Commands

The interactive mode reads one command per line:

	load <path>        replace the index with a dictionary file
	save <path>        write the index to a dictionary file
	insert <word> <f>  insert or update a word with weight f
	remove <word>      delete a word, prints OK or MISS
	contains <word>    exact membership, prints YES or NO
	complete <pre> <k> top-k completions, comma separated
	stats              prints words=N height=H nodes=M
	quit               exit

Dictionary files are two-column word,weight CSV by default; files with
a .bin or .msgpack extension use a msgpack snapshot encoding instead.

# Configuration

A TOML file (created with defaults on first run) bounds the request
surface and sizes the completion result cache:

	[server]
	max_limit = 64
	max_prefix = 256
	default_limit = 10

	[cache]
	enabled = true
	max_entries = 4096
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kelsivan/trieserve/internal/cli"
	"github.com/kelsivan/trieserve/internal/logger"
	"github.com/kelsivan/trieserve/internal/utils"
	"github.com/kelsivan/trieserve/pkg/config"
	"github.com/kelsivan/trieserve/pkg/dictionary"
	"github.com/kelsivan/trieserve/pkg/server"
	"github.com/kelsivan/trieserve/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "trieserve"
)

// sigHandler exits cleanly on Ctrl-C instead of leaving a torn prompt.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	ipcMode := flag.Bool("ipc", false, "Run the msgpack IPC server instead of the interactive loop")
	loadPath := flag.String("load", "", "Dictionary file to preload into the index")
	configPath := flag.String("config", "", "Path to config.toml (default: user config dir)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg := config.InitConfig(resolveConfigPath(*configPath))

	var completer suggest.ICompleter
	if cfg.Cache.Enabled {
		completer = suggest.NewCachedCompleter(cfg.Cache.MaxEntries)
	} else {
		completer = suggest.NewCompleter()
	}

	if *loadPath != "" {
		entries, err := dictionary.Load(*loadPath)
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		for _, e := range entries {
			completer.AddWord(e.Word, e.Weight)
		}
		log.Debugf("preloaded %d entries from %s", len(entries), *loadPath)
	}

	if *ipcMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(completer, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	repl := cli.NewRepl(completer, os.Stdin, os.Stdout, cfg.Server.MaxPrefix)
	if err := repl.Run(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// resolveConfigPath prefers the explicit flag, then the user config dir,
// then a file next to the working directory as a last resort.
func resolveConfigPath(custom string) string {
	if custom != "" {
		return utils.GetAbsolutePath(custom)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, AppName, "config.toml")
	}
	return "config.toml"
}

func printVersion() {
	lg := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	lg.SetStyles(styles)

	lg.Print("[ trieserve ] ranked prefix completions over a weighted trie")
	lg.Print("", "version", Version)
	lg.Print("use -h to see available options")
}
