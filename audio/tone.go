package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a fixed-length sine beep with a linear release
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	volume  float64
	pos     int
	samples int
}

// NewToneGenerator creates a tone of freq Hz lasting d
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		volume:  volume,
		samples: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		env := 1.0 - float64(g.pos)/float64(g.samples)
		v := g.volume * env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Len returns the total sample count
func (g *ToneGenerator) Len() int {
	return g.samples
}
