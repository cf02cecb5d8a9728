package caption

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/menta2k/image-captioner/pkg/client"
	"github.com/menta2k/image-captioner/pkg/processing"
	"github.com/menta2k/image-captioner/pkg/types"
)

// DefaultPrompt is the prompt used to elicit a single short caption
const DefaultPrompt = `Describe this image in one short sentence. Reply with the caption only: no preamble, no quotes, no markdown.`

// WarmupSize is the side length of the synthetic image used for warm-up
const WarmupSize = 224

// Config holds configuration for the caption engine
type Config struct {
	Model      string
	Prompt     string
	Generation types.GenerationOptions
	Prepare    types.PrepareOptions
	// ErrOut receives per-image error lines, defaults to os.Stderr
	ErrOut io.Writer
}

// Engine generates cleaned captions for images using a vision client.
// It is read-only after construction and safe to reuse across a batch.
type Engine struct {
	client    client.VisionClient
	processor *processing.Processor
	config    Config
}

// NewEngine creates an engine with default generation parameters
func NewEngine(visionClient client.VisionClient, model string) *Engine {
	return NewEngineWithConfig(visionClient, Config{Model: model})
}

// NewEngineWithConfig creates an engine with custom configuration
func NewEngineWithConfig(visionClient client.VisionClient, config Config) *Engine {
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	if config.Generation == (types.GenerationOptions{}) {
		config.Generation = types.DefaultGenerationOptions()
	}
	if config.Prepare == (types.PrepareOptions{}) {
		config.Prepare = types.DefaultPrepareOptions()
	}
	if config.ErrOut == nil {
		config.ErrOut = os.Stderr
	}
	return &Engine{
		client:    visionClient,
		processor: processing.NewProcessor(),
		config:    config,
	}
}

// Warmup runs one inference pass over a synthetic blank image so that
// backend-side lazy initialization happens before real inputs are
// processed. A warm-up failure means the model is unusable and the
// caller should treat it as fatal.
func (e *Engine) Warmup(ctx context.Context) error {
	blank := e.processor.NewBlankImage(WarmupSize, WarmupSize)
	imgB64, err := e.processor.PrepareImageForModel(blank, e.config.Prepare)
	if err != nil {
		return fmt.Errorf("failed to prepare warm-up image: %w", err)
	}
	if _, err := e.client.Caption(ctx, e.config.Model, e.config.Prompt, imgB64, e.config.Generation); err != nil {
		return fmt.Errorf("warm-up inference failed: %w", err)
	}
	return nil
}

// CaptionImage generates a cleaned caption for a single image path or URL.
// Every error it returns is one of the enumerated per-image classes:
// *DecodeError, *InferenceError or ErrEmptyCaption. All per-call state
// (decoded image, encoded payload) is scoped to this call.
func (e *Engine) CaptionImage(ctx context.Context, path string) (string, error) {
	img, err := e.processor.LoadImageSmart(path)
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}

	// Canonical 3-channel RGB, then wire encoding
	imgB64, err := e.processor.PrepareImageForModel(e.processor.ToRGB(img), e.config.Prepare)
	if err != nil {
		return "", &DecodeError{Path: path, Err: err}
	}

	raw, err := e.client.Caption(ctx, e.config.Model, e.config.Prompt, imgB64, e.config.Generation)
	if err != nil {
		return "", &InferenceError{Path: path, Err: err}
	}

	cleaned := CleanCaption(raw)
	if cleaned == "" {
		return "", ErrEmptyCaption
	}
	return cleaned, nil
}

// CaptionBatch processes paths sequentially and returns a record per
// successful image, preserving input order. Per-image failures are
// written to the error stream as "Error processing <path>: <message>"
// and the path is skipped; they never appear in the returned slice.
// An error outside the enumerated per-image classes aborts the batch.
func (e *Engine) CaptionBatch(ctx context.Context, paths []string) ([]types.CaptionResult, error) {
	results := make([]types.CaptionResult, 0, len(paths))
	for _, path := range paths {
		caption, err := e.CaptionImage(ctx, path)
		if err != nil {
			if !IsSkippable(err) {
				return results, err
			}
			fmt.Fprintf(e.config.ErrOut, "Error processing %s: %v\n", path, err)
			continue
		}
		results = append(results, types.CaptionResult{Path: path, Caption: caption})
	}
	return results, nil
}

// TestVision checks that the model can actually see images by asking for
// a free-form description of the warm-up image
func (e *Engine) TestVision(ctx context.Context) (string, error) {
	blank := e.processor.NewBlankImage(WarmupSize, WarmupSize)
	imgB64, err := e.processor.PrepareImageForModel(blank, e.config.Prepare)
	if err != nil {
		return "", err
	}
	return e.client.SimpleQuery(ctx, e.config.Model, "What do you see in this image? Describe it briefly.", imgB64)
}
