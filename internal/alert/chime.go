// Package alert plays the chime that marks a completed period.
package alert

import (
	"fmt"
	"math"
	"sync"
	"time"

	"pomodoro/internal/core/pomodoro"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	noteLength = 180 * time.Millisecond
	noteGap    = 90 * time.Millisecond

	// Breaks start on a higher note than work periods.
	workPitch  = 523.25
	breakPitch = 783.99
)

// Config contains chime options. Volume is a base-2 exponent; 0 is unchanged.
type Config struct {
	Sound  bool
	Volume float64
}

// Player owns the speaker. It is initialized on the first chime.
type Player struct {
	config   Config
	initOnce sync.Once
	ready    bool
}

// New creates a Player.
func New(config Config) *Player {
	return &Player{config: config}
}

// Play starts the chime for the period that just began and returns immediately.
// A speaker that fails to initialize is reported once and then stays silent.
func (player *Player) Play(started pomodoro.Period) error {
	if !player.config.Sound {
		return nil
	}
	var err error
	player.initOnce.Do(func() {
		err = player.init()
	})
	if err != nil || !player.ready {
		return err
	}
	speaker.Play(player.chime(started))
	return nil
}

// Close stops any chime still playing.
func (player *Player) Close() {
	if player.ready {
		speaker.Clear()
	}
}

func (player *Player) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	player.ready = true
	return nil
}

// chime is two short notes, the second a fifth above the first.
func (player *Player) chime(started pomodoro.Period) beep.Streamer {
	pitch := workPitch
	if started == pomodoro.PeriodBreak {
		pitch = breakPitch
	}
	note := sampleRate.N(noteLength)

	return &effects.Volume{
		Streamer: beep.Seq(
			beep.Take(note, Tone(sampleRate, pitch)),
			beep.Silence(sampleRate.N(noteGap)),
			beep.Take(note, Tone(sampleRate, pitch*1.5)),
		),
		Base:   2,
		Volume: player.config.Volume,
		Silent: false,
	}
}

// Tone returns an endless sine wave at frequency hertz, at half amplitude.
func Tone(rate beep.SampleRate, frequency float64) beep.Streamer {
	step := 2 * math.Pi * frequency / float64(rate)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := 0.5 * math.Sin(step*float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	})
}
