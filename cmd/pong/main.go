// Command pong is a terminal pong game: the player's paddle on the left, a
// CPU paddle on the right and two balls in play.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	frameTime  = time.Second / 30
	holdWindow = 150 * time.Millisecond
	minWidth   = 40
	minHeight  = 15
)

type options struct {
	difficulty string
	maxScore   int
	logPath    string
	mute       bool
	seed       int64
}

func main() {
	var opts options
	flag.StringVar(&opts.difficulty, "difficulty", "medium", "Ball and paddle speed: easy, medium or hard.")
	flag.IntVar(&opts.maxScore, "max-score", 10, "Points needed to win.")
	flag.StringVar(&opts.logPath, "log", "pong.log", "File to write logs to. Empty disables logging.")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound.")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed. Zero seeds from the clock.")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "opening log %s", path)
	}
	return zerolog.New(f).With().Timestamp().Logger(), func() { f.Close() }, nil
}

func run(opts options) error {
	maxSpeed, err := speedFor(opts.difficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var sound Sound = silence{}
	if !opts.mute {
		if s, err := newBeepSound(logger); err != nil {
			logger.Warn().Err(err).Msg("sound disabled")
		} else {
			sound = s
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return eris.Wrap(err, "creating screen")
	}
	if err := screen.Init(); err != nil {
		return eris.Wrap(err, "initializing screen")
	}
	defer screen.Fini()

	width, height := screen.Size()
	if width < minWidth || height < minHeight {
		return eris.Errorf("terminal too small: need %dx%d, have %dx%d", minWidth, minHeight, width, height)
	}

	cfg := Config{
		Width:    float64(width),
		Height:   float64(height),
		MaxScore: opts.maxScore,
		MaxSpeed: maxSpeed,
	}
	newGame := func() *Game {
		logger.Info().Int64("seed", seed).Str("difficulty", opts.difficulty).Msg("new game")
		return NewGame(cfg, rng, sound, logger)
	}
	game := newGame()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	var held Direction
	var heldAt time.Time
	lastFrame := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyUp || ev.Rune() == 'w':
					held, heldAt = Up, time.Now()
				case ev.Key() == tcell.KeyDown || ev.Rune() == 's':
					held, heldAt = Down, time.Now()
				case ev.Rune() == 'r' && game.State() != Running:
					game = newGame()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			input := Idle
			if now.Sub(heldAt) < holdWindow {
				input = held
			}

			dt := now.Sub(lastFrame).Seconds()
			lastFrame = now

			before := game.State()
			if state := game.Step(dt, input); state != before {
				logger.Info().Stringer("state", state).Interface("score", game.Score()).Msg("game over")
			}
			render(screen, game)
		}
	}
}
