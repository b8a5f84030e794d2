package analysis

// DominantFrequency finds the strongest non-DC component of a displacement
// trace, in cycles per second given the trace duration. It reports 0 for
// traces too short to analyze.
func DominantFrequency(trace []float64, duration float64) float64 {
	if len(trace) < 4 || duration <= 0 {
		return 0
	}

	ps := PowerSpectrum(trace)
	padded := 2 * len(ps)

	maxPower, maxIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	// bin i of the padded window is i*rate/padded cycles per second,
	// at a sample rate of len(trace)/duration
	rate := float64(len(trace)) / duration
	return float64(maxIdx) * rate / float64(padded)
}

// DecayRatio measures how far a trace has settled: the mean of its last
// quarter divided by the mean of its first quarter. Values near zero mean
// the mesh came to rest; values near one mean it is still being stirred.
func DecayRatio(trace []float64) float64 {
	q := len(trace) / 4
	if q == 0 {
		return 0
	}

	head, tail := 0.0, 0.0
	for i := 0; i < q; i++ {
		head += trace[i]
		tail += trace[len(trace)-q+i]
	}
	if head == 0 {
		return 0
	}
	return tail / head
}
