package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length wave whose frequency slides linearly
// from freq to endFreq.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq, endFreq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(wave))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream and ends it
// after total samples.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release && e.release > 0 {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a sine note of fixed pitch shaped by a short envelope.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		sine = newOscillator(freq, freq, d, WaveSine, rate)
	}
	return newEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, d/2, rate)
}

// Build synthesizes a cue at the given volume in [0, 1].
func Build(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueLaunch:
		// Rising twang with a puff of air
		d := 180 * time.Millisecond
		twang := newEnvelope(newOscillator(180, 520, d, WaveSaw, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate)
		puff := newEnvelope(newOscillator(0, 0, d, WaveNoise, rate), d, 10*time.Millisecond, 150*time.Millisecond, rate)
		s = beep.Mix(newVolume(twang, 0.5), newVolume(puff, 0.2))

	case CueImpact:
		// Crunch: falling square over noise
		d := 250 * time.Millisecond
		crunch := newEnvelope(newOscillator(0, 0, d, WaveNoise, rate), d, 2*time.Millisecond, 220*time.Millisecond, rate)
		thud := newEnvelope(newOscillator(140, 50, d, WaveSquare, rate), d, 2*time.Millisecond, 200*time.Millisecond, rate)
		s = beep.Mix(newVolume(crunch, 0.45), newVolume(thud, 0.3))

	case CueReady:
		s = newVolume(tone(660, 60*time.Millisecond, rate), 0.4)

	case CueVictory:
		// C major arpeggio
		note := 120 * time.Millisecond
		s = beep.Seq(
			newVolume(tone(523.25, note, rate), 0.5),
			newVolume(tone(659.25, note, rate), 0.5),
			newVolume(tone(783.99, note, rate), 0.5),
			newVolume(tone(1046.5, 2*note, rate), 0.5),
		)

	case CueDefeat:
		d := 600 * time.Millisecond
		slide := newEnvelope(newOscillator(330, 110, d, WaveSaw, rate), d, 10*time.Millisecond, 300*time.Millisecond, rate)
		s = newVolume(slide, 0.5)

	default:
		s = beep.Silence(0)
	}
	return newVolume(s, volume)
}
