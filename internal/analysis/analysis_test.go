package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumConstantSignal(t *testing.T) {
	data := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	ps := PowerSpectrum(data)

	// all power in the DC bin
	if math.Abs(ps[0]-8) > 1e-9 {
		t.Errorf("expected DC power 8, got %f", ps[0])
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] > 1e-9 {
			t.Errorf("bin %d: unexpected power %f", i, ps[i])
		}
	}
}

func TestPowerSpectrumSingleTone(t *testing.T) {
	n := 64
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != 4 {
		t.Errorf("expected peak at bin 4, got %d", maxIdx)
	}
}

func TestPowerSpectrumPadsToPowerOfTwo(t *testing.T) {
	// 5 samples pad to 8, so half the spectrum is 4 bins
	if got := len(PowerSpectrum(make([]float64, 5))); got != 4 {
		t.Errorf("expected 4 bins, got %d", got)
	}
	if got := len(PowerSpectrum(make([]float64, 8))); got != 4 {
		t.Errorf("expected 4 bins, got %d", got)
	}
}

func TestDominantFrequency(t *testing.T) {
	// 4 Hz tone sampled for one second
	n := 128
	trace := make([]float64, n)
	for i := range trace {
		trace[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	freq := DominantFrequency(trace, 1.0)
	if math.Abs(freq-4) > 0.5 {
		t.Errorf("expected ~4 hz, got %f", freq)
	}

	if DominantFrequency([]float64{1, 2}, 1.0) != 0 {
		t.Error("short trace should report 0")
	}
}

func TestDominantFrequencyPaddedTrace(t *testing.T) {
	// 2 Hz tone over 5 s at 60 fps: 300 samples pad to 512, and the bin
	// scale must account for the padding or the frequency comes out high
	n, dur := 300, 5.0
	trace := make([]float64, n)
	for i := range trace {
		trace[i] = math.Sin(2 * math.Pi * 2 * float64(i) * dur / float64(n))
	}

	freq := DominantFrequency(trace, dur)
	if math.Abs(freq-2) > 0.25 {
		t.Errorf("expected ~2 hz, got %f", freq)
	}
}

func TestDecayRatio(t *testing.T) {
	decaying := []float64{10, 10, 10, 10, 5, 3, 1, 0, 0, 0, 0, 0}
	if r := DecayRatio(decaying); r != 0 {
		t.Errorf("expected ratio 0 for fully settled trace, got %f", r)
	}

	steady := []float64{2, 2, 2, 2, 2, 2, 2, 2}
	if r := DecayRatio(steady); math.Abs(r-1) > 1e-9 {
		t.Errorf("expected ratio 1 for steady trace, got %f", r)
	}

	if DecayRatio(nil) != 0 {
		t.Error("empty trace should report 0")
	}
}
