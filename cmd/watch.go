package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gnutop/gnet"
	"gnutop/hsep"
	"gnutop/props"
	"gnutop/ui"
)

// runWatch prints the stats tables to stdout on every interval, without
// a TUI. Useful over plain terminals and in scripts.
func runWatch(cfg Config, store *props.Store, stats *gnet.Stats, horizon *hsep.Table) error {
	console := ui.NewConsole(store, stats, horizon)
	defer console.Shutdown()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for i := 0; cfg.WatchCount == 0 || i < cfg.WatchCount; i++ {
		if i > 0 {
			select {
			case <-sig:
				fmt.Println("\nStopped.")
				return nil
			case <-ticker.C:
			}
		}
		console.Tick(time.Now().Unix())
		fmt.Printf("gnutop v%s — %s\n\n", Version, time.Now().Format("15:04:05"))
		fmt.Print(console.Render())
	}
	return nil
}
