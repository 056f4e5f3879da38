package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// drain streams s to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	limit := SampleRate.N(5 * time.Second)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			peak = math.Max(peak, math.Abs(buf[i][1]))
		}
		total += n
		if !ok {
			break
		}
		if total > limit {
			t.Fatalf("stream did not end after %d samples", total)
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
	return total, peak
}

func TestBuildCues(t *testing.T) {
	cues := []Cue{CueLaunch, CueImpact, CueReady, CueVictory, CueDefeat}

	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			n, peak := drain(t, Build(c, 1, SampleRate))
			if n == 0 {
				t.Fatal("cue produced no samples")
			}
			if peak == 0 {
				t.Error("cue is silent at full volume")
			}
			if peak > 1 {
				t.Errorf("peak %f clips", peak)
			}
		})
	}
}

func TestBuildZeroVolumeIsSilent(t *testing.T) {
	n, peak := drain(t, Build(CueImpact, 0, SampleRate))
	if n == 0 {
		t.Error("silent cue should keep its length")
	}
	if peak != 0 {
		t.Errorf("peak = %f, expected 0", peak)
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := newOscillator(440, 440, 100*time.Millisecond, WaveSine, SampleRate)
	n, peak := drain(t, osc)
	if n != SampleRate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", n, SampleRate.N(100*time.Millisecond))
	}
	if peak > 1 {
		t.Errorf("peak %f out of range", peak)
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := newOscillator(220, 220, 50*time.Millisecond, WaveSquare, SampleRate)
	buf := make([][2]float64, 100)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != -1 && v != 1 {
			t.Fatalf("square sample %d = %f", i, v)
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	env := newEnvelope(newOscillator(0, 0, d, WaveSquare, SampleRate), d, 10*time.Millisecond, 10*time.Millisecond, SampleRate)
	buf := make([][2]float64, SampleRate.N(d))
	n, _ := env.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected silence at attack start", buf[0][0])
	}
	if math.Abs(buf[n/2][0]) != 1 {
		t.Errorf("sustain sample = %f, expected full level", buf[n/2][0])
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %f, expected near silence", last)
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind     core.EventKind
		expected Cue
	}{
		{core.EventLaunch, CueLaunch},
		{core.EventTargetDestroyed, CueImpact},
		{core.EventProjectileReady, CueReady},
		{core.EventWon, CueVictory},
		{core.EventLost, CueDefeat},
	}

	for _, tc := range tests {
		c, ok := CueFor(tc.kind)
		if !ok || c != tc.expected {
			t.Errorf("CueFor(%v) = %v, %v; expected %v", tc.kind, c, ok, tc.expected)
		}
	}
}

type recorder struct{ cues []Cue }

func (r *recorder) Play(c Cue) { r.cues = append(r.cues, c) }
func (r *recorder) Close()     {}

func TestPlayEvents(t *testing.T) {
	r := &recorder{}
	PlayEvents(r, []core.Event{
		{Kind: core.EventLaunch},
		{Kind: core.EventTargetDestroyed},
		{Kind: core.EventWon},
	})

	if len(r.cues) != 3 || r.cues[0] != CueLaunch || r.cues[2] != CueVictory {
		t.Errorf("cues = %v", r.cues)
	}

	var s Player = Silent{}
	PlayEvents(s, []core.Event{{Kind: core.EventLost}})
	s.Close()
}
