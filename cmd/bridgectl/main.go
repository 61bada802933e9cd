package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/bridgectl/internal/client"
	"github.com/danmuck/bridgectl/internal/game"
	"github.com/danmuck/bridgectl/internal/logging"
	"github.com/danmuck/bridgectl/internal/transport"
	"github.com/danmuck/bridgectl/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bridgectl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	serverKeyFile := flag.String("server-key-file", "", "file to read the CURVE server key from; enables transport security")
	configPath := flag.String("config", "", "configuration file tracking the player identity between runs")
	position := flag.String("position", "", "preferred seat to request (north, east, south, west)")
	gameID := flag.String("game", "", "identifier of the game to join")
	createGame := flag.Bool("create-game", false, "request the backend to create a new game")
	flag.Usage = usage
	flag.Parse()

	logging.ConfigureRuntime()

	if flag.NArg() != 1 {
		usage()
		return errors.New("base endpoint required")
	}
	endpoint := flag.Arg(0)

	cfg := client.Config{GameID: *gameID, CreateGame: *createGame}
	if *position != "" {
		seat := game.Position(*position)
		if !seat.Valid() {
			return fmt.Errorf("invalid position %q", *position)
		}
		cfg.Position = &seat
	}

	identity, err := loadIdentity(*configPath)
	if err != nil {
		return err
	}
	serverKey, err := loadServerKey(*serverKeyFile)
	if err != nil {
		return err
	}
	curve := transport.CurveConfig{ServerKey: serverKey}
	if err := curve.Validate(); err != nil {
		return err
	}

	controlEndpoint, eventEndpoint, err := transport.Endpoints(endpoint)
	if err != nil {
		return err
	}

	log.Info().Msg("initializing sockets")
	zctx, err := transport.NewContext()
	if err != nil {
		return err
	}
	control, err := zctx.NewControlSocket(controlEndpoint, identity, curve)
	if err != nil {
		return err
	}
	events, err := zctx.NewEventSocket(eventEndpoint, curve)
	if err != nil {
		control.Close()
		return err
	}

	session := client.New(control, events, ui.NewTable(), cfg)
	poller := transport.NewPoller(control, events)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := ui.NewReader(os.Stdin, session.Intents())
	go func() {
		if err := reader.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("input reader stopped")
		}
	}()

	session.Start()
	err = session.Run(ctx, poller)

	log.Info().Msg("closing sockets")
	if closeErr := session.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("closing channels failed")
	}
	if termErr := zctx.Terminate(); termErr != nil {
		log.Error().Err(termErr).Msg("terminating context failed")
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] ENDPOINT\n\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "A lightweight bridge client. ENDPOINT is the base endpoint of the\nbridge backend, for example tcp://bridge.example.com:5555; the event\nchannel is expected one port above it.\n\n")
	flag.PrintDefaults()
}
