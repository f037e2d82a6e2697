// Command imgfs-server is the HTTP front-end over an imgFS container: list,
// read, insert, and delete over a small REST-ish surface (spec §4.7).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	ifs "imgfs/internal/fs"
	"imgfs/internal/httpapi"
	"imgfs/internal/imgcodec"
	"imgfs/internal/imgfs"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// defaultPort is the listen port used when the server subcommand's
// optional <port> argument is omitted (spec §6.4).
const defaultPort = 8000

func run(args []string, out, errOut *os.File) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	staticDir := fs.String("web", "web", "directory holding index.html")
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		fmt.Fprintln(errOut, "ERROR: usage: imgfs-server [-web ./web] <store> [<port>]")
		return 1
	}

	port := defaultPort
	if fs.NArg() == 2 {
		p, err := strconv.Atoi(fs.Arg(1))
		if err != nil || p <= 0 {
			fmt.Fprintln(errOut, "ERROR: invalid port:", fs.Arg(1))
			return 1
		}
		port = p
	}

	logger := slog.New(slog.NewTextHandler(out, nil))

	store, err := imgfs.Open(ifs.NewReal(), imgcodec.NewJPEG(), fs.Arg(0))
	if err != nil {
		logger.Error("opening imgFS", "error", err)
		return 1
	}
	defer store.Close()

	imgfs.PrintHeader(out, store.Header())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: httpapi.New(store, *staticDir, logger),
	}

	// Two-stage shutdown: first signal starts a graceful drain, second
	// signal or a 5s timeout forces exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.ListenAndServe() }()

	select {
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("serving", "error", err)
			return 1
		}
		return 0
	case <-sigCh:
		logger.Info("shutting down with 5s timeout...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Shutdown(ctx) }()

	select {
	case <-done:
		logger.Info("graceful shutdown ok")
		return 0
	case <-ctx.Done():
		logger.Info("graceful shutdown timed out, forced exit")
		return 130
	case <-sigCh:
		logger.Info("graceful shutdown interrupted, forced exit")
		return 130
	}
}
