package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hammy3502/tarstall/internal/bootstrap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl+C cancels the context so a running external command is torn down
	// before we exit through the normal fatal path.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	cfg := bootstrap.DefaultSettings()
	if err := bootstrap.New(ctx, cfg).Run(); err != nil {
		bootstrap.ReportFatal(err)
		os.Exit(1)
	}
}
