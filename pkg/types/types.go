package types

// CaptionResult pairs an input path with its generated caption.
// Only successfully processed images produce a result.
type CaptionResult struct {
	Path    string `json:"path"`
	Caption string `json:"caption"`
}

// GenerationOptions controls text generation on the model side
type GenerationOptions struct {
	// MaxTokens bounds the number of newly generated tokens
	MaxTokens int
	// Temperature > 0 allows some randomness in decoding
	Temperature float64
	// RepeatPenalty discourages the model from repeating phrases
	RepeatPenalty float64
}

// DefaultGenerationOptions returns the generation parameters used for captioning
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		MaxTokens:     60,
		Temperature:   0.7,
		RepeatPenalty: 1.2,
	}
}

// PrepareOptions controls how images are encoded before being sent to the model
type PrepareOptions struct {
	// Format is the wire format: "jpg" or "png"
	Format string
	// MaxDim is the maximum long side in pixels, 0 keeps the original size
	MaxDim int
	// Quality is the JPEG quality (1-100) when Format is "jpg"
	Quality int
}

// DefaultPrepareOptions returns the default wire encoding parameters
func DefaultPrepareOptions() PrepareOptions {
	return PrepareOptions{
		Format:  "jpg",
		MaxDim:  1536,
		Quality: 85,
	}
}
