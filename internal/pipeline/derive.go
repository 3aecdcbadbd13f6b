package pipeline

// DeriveMinSeconds computes the minimum usable cut duration. An explicit
// minSeconds wins. Otherwise the threshold comes from the STFT frontend
// geometry: reflect and replicate padding need strictly more than n_fft/2
// samples, constant padding imposes no constraint.
func DeriveMinSeconds(minSeconds *float64, nFFT, targetRate int, padMode string) float64 {
	if minSeconds != nil {
		return *minSeconds
	}
	switch padMode {
	case "reflect", "replicate":
		requiredSamples := nFFT/2 + 1
		return float64(requiredSamples) / float64(targetRate)
	default:
		return 0
	}
}
