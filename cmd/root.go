package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gnutop/gnet"
	"gnutop/hsep"
	"gnutop/props"
	"gnutop/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Config holds CLI configuration.
type Config struct {
	Interval   time.Duration
	Source     gnet.Source
	Percent    bool
	Bytes      bool
	NoHeaders  bool
	WatchMode  bool
	WatchCount int
	PropsPath  string
	Demo       bool
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `gnutop v%s — Gnutella servent traffic statistics console

Usage:
  gnutop [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints the tables with auto-refresh
  -version          Print version and exit

Options:
  -interval N       Update interval in seconds (default: 1)
  -source NAME      Counter source: full, tcp or udp (default: full)
  -percent          Start with percentage view enabled
  -bytes            Start with byte counts instead of packet counts
  -noheaders        Exclude protocol headers from byte counts
  -count N          Number of iterations for -watch mode (0 = infinite)
  -props PATH       Property file path (default: ~/.config/gnutop/props.json)
  -demo             Feed the tables with synthetic traffic

Positional:
  INTERVAL          First positional arg sets interval: gnutop 5 = gnutop -interval 5

Examples:
  gnutop -demo                       Interactive TUI on synthetic traffic
  gnutop -demo -watch -count 10      Print the tables ten times, then exit
  gnutop -source tcp -bytes          TCP-only byte counts
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	var cfg Config
	var intervalSec int
	var sourceName string
	var showVersion bool

	flag.IntVar(&intervalSec, "interval", 1, "Update interval in seconds")
	flag.StringVar(&sourceName, "source", "full", "Counter source (full, tcp, udp)")
	flag.BoolVar(&cfg.Percent, "percent", false, "Start with percentage view enabled")
	flag.BoolVar(&cfg.Bytes, "bytes", false, "Start with byte counts")
	flag.BoolVar(&cfg.NoHeaders, "noheaders", false, "Exclude protocol headers from byte counts")
	flag.BoolVar(&cfg.WatchMode, "watch", false, "CLI output mode (no TUI)")
	flag.IntVar(&cfg.WatchCount, "count", 0, "Number of iterations for -watch (0=infinite)")
	flag.StringVar(&cfg.PropsPath, "props", "", "Property file path")
	flag.BoolVar(&cfg.Demo, "demo", false, "Feed the tables with synthetic traffic")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("gnutop v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `gnutop 5` = `gnutop -interval 5`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			intervalSec = n
		}
	}
	if intervalSec < 1 {
		intervalSec = 1
	}
	cfg.Interval = time.Duration(intervalSec) * time.Second

	src, err := gnet.ParseSource(sourceName)
	if err != nil {
		return err
	}
	cfg.Source = src

	if cfg.PropsPath == "" {
		cfg.PropsPath = props.DefaultPath()
	}

	store := props.NewStore(cfg.PropsPath)
	store.Load()
	store.SetUint32(props.StatsSource, uint32(cfg.Source))
	if cfg.Percent {
		store.SetBool(props.StatsPerc, true)
	}
	if cfg.Bytes {
		store.SetBool(props.StatsBytes, true)
	}
	store.SetBool(props.StatsWithHeaders, !cfg.NoHeaders)

	stats := gnet.NewStats()
	horizon := hsep.NewTable()

	var stopFeed func()
	if cfg.Demo {
		stopFeed = startDemoFeed(stats, horizon, cfg.Interval)
		defer stopFeed()
	}

	if cfg.WatchMode {
		return runWatch(cfg, store, stats, horizon)
	}

	m := ui.NewModel(store, stats, horizon, cfg.Interval)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(ui.Model); ok {
		fm.Driver().Shutdown()
	}
	if err := store.Save(); err != nil {
		return fmt.Errorf("saving properties: %w", err)
	}
	return nil
}

// startDemoFeed runs the synthetic traffic generator until the returned
// stop function is called.
func startDemoFeed(stats *gnet.Stats, horizon *hsep.Table, interval time.Duration) func() {
	sim := gnet.NewSimulator(time.Now().UnixNano(), stats, horizon.Add)
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval / 4)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				sim.Step()
			}
		}
	}()
	return func() { close(done) }
}
