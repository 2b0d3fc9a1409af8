package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"citadels-console/internal/agent"
	"citadels-console/internal/config"
	"citadels-console/internal/console"
	"citadels-console/internal/engine"
	"citadels-console/internal/engine/abilities"
	"citadels-console/internal/lobby"
	"citadels-console/internal/logging"
	"citadels-console/internal/qrcode"
	"citadels-console/internal/random"
	"citadels-console/internal/server"
	"citadels-console/internal/storage"
)

func main() {
	err := run()
	switch {
	case err == nil:
	case errors.Is(err, console.ErrQuit), errors.Is(err, context.Canceled):
		fmt.Println("Goodbye.")
	default:
		logrus.WithError(err).Fatal("citadels")
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		if cfg.Seed, err = random.NewSeed(); err != nil {
			return err
		}
	}
	log.WithField("seed", cfg.Seed).Info("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	out := color.Output

	repo, err := storage.Open(ctx, storage.Options{
		Kind:       cfg.Store,
		Dir:        cfg.SaveDir,
		SQLitePath: cfg.SQLitePath,
		RedisURL:   cfg.RedisURL,
	})
	if err != nil {
		return err
	}
	defer repo.Close()

	n := cfg.Players
	if n == 0 {
		if n, err = askPlayers(line, out); err != nil {
			return err
		}
	}
	table, err := lobby.Table(n, cfg.HumanName)
	if err != nil {
		return err
	}

	gc := engine.DefaultConfig()
	gc.Seed = cfg.Seed
	gc.EndCitySize = cfg.EndCitySize
	gc.Logger = log
	if cfg.CardsFile != "" {
		if gc.Districts, err = loadCards(cfg.CardsFile); err != nil {
			return err
		}
	}

	human := console.NewHuman(line, out, repo)
	human.SetDebug(cfg.Debug)
	var humanID string
	var players []*engine.Player
	for i, s := range table.Seats() {
		if s.Human {
			humanID = s.ID
			players = append(players, engine.NewPlayer(s.ID, s.Name, engine.KindHuman, human))
			continue
		}
		bot := agent.NewBot(random.Derive(cfg.Seed, i), log.WithField("player", s.Name))
		players = append(players, engine.NewPlayer(s.ID, s.Name, engine.KindBot, console.NewPaced(bot, human, cfg.Pace)))
	}

	g := engine.NewGame(players, gc, abilities.Registry())
	human.Attach(g)
	g.Subscribe(console.NewNarrator(out, g, humanID).Handle)

	eg, ectx := errgroup.WithContext(ctx)
	srvCtx, stopServer := context.WithCancel(ectx)
	defer stopServer()
	if cfg.SpectateAddr != "" {
		hub := server.NewHub(g.ID, log)
		hub.Subscribe(g)
		srv := server.New(cfg.SpectateAddr, hub, log)
		eg.Go(func() error { return srv.Run(srvCtx) })
		printSpectatorQR(out, cfg.SpectateAddr)
	}

	if err := g.StartGame(); err != nil {
		return err
	}
	if cfg.Load != "" {
		snap, err := repo.Load(ctx, cfg.Load)
		if err != nil {
			return fmt.Errorf("load %s: %w", cfg.Load, err)
		}
		if err := g.Restore(snap); err != nil {
			return fmt.Errorf("restore %s: %w", cfg.Load, err)
		}
	}

	console.RenderHelp(out)
	eg.Go(func() error {
		defer stopServer()
		return g.Play(ectx)
	})
	return eg.Wait()
}

func askPlayers(line console.LineReader, out io.Writer) (int, error) {
	for {
		s, err := line.Prompt(fmt.Sprintf("Enter how many players [%d-%d]: ", lobby.MinPlayers, lobby.MaxPlayers))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return 0, console.ErrQuit
			}
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && n >= lobby.MinPlayers && n <= lobby.MaxPlayers {
			return n, nil
		}
		fmt.Fprintln(out, "Invalid input. Please enter a number from 4 to 7.")
	}
}

func loadCards(path string) ([]engine.District, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cards, err := engine.LoadDistricts(f)
	if err != nil {
		return nil, fmt.Errorf("cards %s: %w", path, err)
	}
	return cards, nil
}

func printSpectatorQR(out io.Writer, addr string) {
	host := addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	url := server.StateURL(host)
	code, err := qrcode.Terminal(url)
	if err != nil {
		logrus.WithError(err).Warn("spectator qr")
		return
	}
	fmt.Fprintf(out, "Spectators: %s\n%s\n", url, code)
}
