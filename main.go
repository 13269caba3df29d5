package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"

	"DrawingPad/internal/config"
	lnet "DrawingPad/internal/net"
	"DrawingPad/internal/ui"
	"DrawingPad/internal/web"

	"github.com/gogpu/gg"
)

const usage = "usage: drawingpad [native|web|find] [config.toml]"

func main() {
	mode := "native"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	var cfgPath string
	if len(os.Args) > 2 {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}
	if err := setupLogging(cfg); err != nil {
		fatal(err)
	}

	switch mode {
	case "native":
		err = runNative(cfg)
	case "web":
		err = runWeb(cfg)
	case "find":
		err = runFind()
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func setupLogging(cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("could not set up logging: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
	return nil
}

func fatal(err error) {
	slog.Error("fatal", "err", err)
	os.Exit(1)
}

func runNative(cfg config.Config) error {
	slog.Info("starting native pad", "width", cfg.Window.Width, "height", cfg.Window.Height)
	return ui.RunApp(cfg)
}

func runWeb(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	peers := lnet.NewPeerManager()
	server := web.NewServer(peers)

	_, portStr, err := net.SplitHostPort(cfg.Web.Addr)
	if err != nil {
		return fmt.Errorf("invalid web address %q: %w", cfg.Web.Addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid web port %q: %w", portStr, err)
	}

	if cfg.Web.Advertise {
		mdnsServer, err := lnet.Advertise(port)
		if err != nil {
			slog.Warn("pad not advertised", "err", err)
		} else {
			defer mdnsServer.Shutdown()
		}
	}

	if url, err := lnet.ShareURL(port); err == nil {
		slog.Info("share this link", "url", url)
	} else {
		slog.Warn("no share link", "err", err)
	}
	return server.ListenAndServe(ctx, cfg.Web.Addr)
}

func runFind() error {
	return lnet.Browse(func(addr string) {
		fmt.Printf("http://%s\n", addr)
	})
}
