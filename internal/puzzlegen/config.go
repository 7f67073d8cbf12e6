package puzzlegen

// Config tunes the generator's two external calls.
type Config struct {
	// DraftTemperature is the sampling randomness for the drafting call.
	// Moderate: varied sentences, stable JSON.
	DraftTemperature float64

	// ReviewTemperature is the sampling randomness for the editor pass.
	// Low: corrections, not rewrites.
	ReviewTemperature float64

	// MaxTokens bounds each response.
	MaxTokens int
}

// DefaultConfig returns the recommended settings.
func DefaultConfig() Config {
	return Config{
		DraftTemperature:  0.7,
		ReviewTemperature: 0.2,
		MaxTokens:         768,
	}
}
