package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"klondike/internal/app/session"
	"klondike/internal/config"
	"klondike/internal/game"
	"klondike/internal/game/viewmodel"
	"klondike/internal/logging"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

const clearSequence = "\x1B[2J\x1B[1;1H"

func main() {
	cfg, err := config.LoadApp(config.DotEnvFile)
	if err != nil {
		panic(err)
	}
	closer, err := logging.Init(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer closer.Close()

	seed := cfg.Game.Seed
	if len(os.Args) > 1 {
		if n, err := strconv.ParseUint(os.Args[1], 10, 64); err == nil {
			seed = n
		}
	}

	h := &host{
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
		maxSeed: cfg.Game.MaxSeed,
		clear:   cfg.Game.ClearScreen && isatty.IsTerminal(os.Stdout.Fd()),
	}
	if err := h.run(seed); err != nil {
		log.Error().Err(err).Msg("game loop failed")
		closer.Close()
		os.Exit(1)
	}
}

type host struct {
	in      *bufio.Scanner
	out     io.Writer
	maxSeed uint64
	clear   bool
	sess    *session.Session
}

// run plays games until the input ends, the player quits or a game is won.
func (h *host) run(seed uint64) error {
	h.newGame(seed)
	for {
		if h.sess.GameOver() {
			fmt.Fprintln(h.out, "Game Over!")
			return nil
		}
		if !h.in.Scan() {
			return h.in.Err()
		}
		if h.clear {
			io.WriteString(h.out, clearSequence)
		}

		cmd, kind := parseInput(h.in.Text())
		switch kind {
		case inputQuit:
			log.Info().Str("session_id", h.sess.ID).Msg("quit")
			return nil
		case inputNewGame:
			h.newGame(0)
			continue
		case inputInvalid:
			fmt.Fprintln(h.out, "Invalid command")
			h.render()
			continue
		}

		out, err := h.sess.Apply(cmd)
		switch {
		case errors.Is(err, game.ErrAtOldestSnapshot):
			fmt.Fprintln(h.out, "Nothing to undo")
		case errors.Is(err, game.ErrAtNewestSnapshot):
			fmt.Fprintln(h.out, "Nothing to redo")
		case err != nil:
			return err
		case cmd.Kind == session.CommandMove && !out.Moved:
			fmt.Fprintln(h.out, "No moves")
		case cmd.Kind == session.CommandMove:
			fmt.Fprintf(h.out, "From %s to %s\n", pileLabels[out.Move.From], pileLabels[out.Move.To])
		}
		h.render()
	}
}

func (h *host) newGame(seed uint64) {
	h.sess = session.New(session.ResolveSeed(seed, h.maxSeed))
	if h.clear {
		io.WriteString(h.out, clearSequence)
	}
	fmt.Fprintf(h.out, "Game %d\n", h.sess.Seed)
	h.render()
}

func (h *host) render() {
	if err := viewmodel.Render(h.out, h.sess.State()); err != nil {
		log.Warn().Err(err).Msg("render failed")
	}
	fmt.Fprintln(h.out)
}
