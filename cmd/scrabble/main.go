// Package main plays moves on a board after configuring it from supplied or standard arguments.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"  // register "postgres" database driver from package init() function
	_ "modernc.org/sqlite" // register "sqlite" database driver from package init() function
)

// main configures and runs the game.
func main() {
	ctx := context.Background()
	logFlags := log.Ldate | log.Ltime | log.LUTC | log.Lshortfile | log.Lmsgprefix
	log := log.New(os.Stderr, "", logFlags)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env file: %v", err)
	}
	m, err := newMainFlags(os.Args, env.ToMap(os.Environ()))
	switch {
	case errors.Is(err, flag.ErrHelp):
		return
	case err != nil:
		log.Fatalf("reading configuration: %v", err)
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, closer, err := m.createGame(ctx, log)
	if err != nil {
		log.Fatalf("creating game: %v", err)
	}
	err = g.Run(ctx, os.Stdin, os.Stdout)
	if err2 := closer.Close(); err2 != nil {
		log.Printf("closing database: %v", err2)
	}
	if err != nil {
		log.Fatalf("running game: %v", err)
	}
}
