package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSpeaker opens the audio device. volume is clamped to [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	sp := &Speaker{
		mixer:  &beep.Mixer{},
		volume: min(1, max(0, volume)),
	}

	// 100ms buffer
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	speaker.Play(sp.mixer)
	sp.initialized = true
	return sp, nil
}

// Play mixes the cue into the output. Overlapping cues are summed.
func (sp *Speaker) Play(c Cue) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	s := Build(c, sp.volume, SampleRate)
	speaker.Lock()
	sp.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	speaker.Lock()
	sp.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sp.initialized = false
}
