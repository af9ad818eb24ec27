package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/arpg/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
	cueVolume  = 0.2
)

// SoundManager plays the short movement cues through the default speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device; failure leaves the manager silent but usable
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// beep has no speaker close; clearing the mixer silences output
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles all cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayDestination plays the short tick for an accepted click
func (sm *SoundManager) PlayDestination() {
	sm.play(parameter.CueDestinationFreqHz, time.Duration(parameter.CueDestinationMs)*time.Millisecond)
}

// PlayArrival plays the longer chime when the player stops
func (sm *SoundManager) PlayArrival() {
	sm.play(parameter.CueArrivalFreqHz, time.Duration(parameter.CueArrivalMs)*time.Millisecond)
}

func (sm *SoundManager) play(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewToneGenerator(sampleRate, freq, d, cueVolume))
	speaker.Unlock()
}
