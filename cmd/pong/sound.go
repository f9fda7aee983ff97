package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)
	hitTone    = 880
	hitLength  = 40 * time.Millisecond
)

type silence struct{}

func (silence) Hit() {}

type beepSound struct {
	tone   float64
	logger zerolog.Logger
}

func newBeepSound(logger zerolog.Logger) (Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, eris.Wrap(err, "initializing speaker")
	}
	return beepSound{tone: hitTone, logger: logger}, nil
}

func (s beepSound) Hit() {
	sine, err := generators.SineTone(sampleRate, s.tone)
	if err != nil {
		s.logger.Error().Err(err).Float64("tone", s.tone).Msg("hit tone unavailable")
		return
	}
	speaker.Play(beep.Take(sampleRate.N(hitLength), sine))
}
