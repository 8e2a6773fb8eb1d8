// Package sound synthesizes the flap, score and crash effects with beep.
// Effects are generated on the fly; no audio assets are shipped.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effect durations
const (
	flapDuration  = 90 * time.Millisecond
	scoreDuration = 140 * time.Millisecond
	crashDuration = 400 * time.Millisecond
)

// Manager plays effects through a single mixer on the system speaker.
// Every Play method is a no-op until Initialize succeeds, so a Manager
// can be handed to the game even when no audio device exists.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
}

// NewManager creates a manager at the given volume in [0, 1].
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything that is still playing.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// PlayFlap plays a short upward chirp.
func (m *Manager) PlayFlap() {
	m.play(beep.Take(sampleRate.N(flapDuration), NewChirpGenerator(sampleRate, 420, 880, flapDuration)))
}

// PlayScore plays a bright two-note blip.
func (m *Manager) PlayScore() {
	high, err := generators.SineTone(sampleRate, 1320)
	if err != nil {
		return
	}
	m.play(beep.Seq(
		beep.Take(sampleRate.N(scoreDuration/2), NewBlipGenerator(sampleRate, 990)),
		beep.Take(sampleRate.N(scoreDuration/2), high),
	))
}

// PlayCrash plays a decaying noise burst.
func (m *Manager) PlayCrash() {
	m.play(beep.Take(sampleRate.N(crashDuration), NewNoiseGenerator(sampleRate, crashDuration, 1)))
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.volume == 0 {
		return
	}
	speaker.Lock()
	m.mixer.Add(m.withVolume(s))
	speaker.Unlock()
}

// withVolume scales s by the manager's linear volume.
func (m *Manager) withVolume(s beep.Streamer) *effects.Volume {
	if m.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(m.volume)}
}

// ChirpGenerator sweeps a sine linearly from one frequency to another
// over its duration, fading out as it goes.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp from `from` Hz to `to` Hz.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.35 * (1 - progress) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// BlipGenerator is a sine with a fast attack.
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip at freq Hz.
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		attack := math.Min(t/0.005, 1)

		sample := 0.3 * attack * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// NoiseGenerator produces white noise under an exponential decay. The
// noise comes from a small xorshift so a given seed always sounds the same.
type NoiseGenerator struct {
	samples int
	pos     int
	state   uint32
}

// NewNoiseGenerator creates a noise burst lasting d.
func NewNoiseGenerator(sr beep.SampleRate, d time.Duration, seed uint32) *NoiseGenerator {
	if seed == 0 {
		seed = 1
	}
	return &NoiseGenerator{samples: sr.N(d), state: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.state ^= g.state << 13
		g.state ^= g.state >> 17
		g.state ^= g.state << 5
		white := float64(g.state)/float64(math.MaxUint32)*2 - 1

		decay := math.Exp(-5 * float64(g.pos) / float64(g.samples))
		sample := 0.4 * decay * white
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
