// Package imagecaptioner generates short natural-language captions for
// images using a pretrained vision-language model served by a local
// inference backend.
//
// The heavy lifting (visual feature extraction, text generation) is
// delegated to the backend; this package handles image loading and
// preparation, prompt construction, caption cleaning and batch
// orchestration.
//
// Basic usage:
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//
//		imagecaptioner "github.com/menta2k/image-captioner"
//	)
//
//	func main() {
//		captioner, err := imagecaptioner.New("ollama", "http://localhost:11434", "llava")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		ctx := context.Background()
//
//		// Warm up once so model load costs are paid before real inputs
//		if err := captioner.Warmup(ctx); err != nil {
//			log.Fatal(err)
//		}
//
//		caption, err := captioner.CaptionFile(ctx, "photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(caption)
//	}
//
// The package consists of four main components:
//
// 1. Backends (pkg/ollama, pkg/llamacpp): clients for local vision-language model servers
// 2. Processing (pkg/processing): image loading, RGB canonicalization and wire encoding
// 3. Caption engine (pkg/caption): warm-up, per-image captioning, text cleaning, batching
// 4. CLI (cmd/image-captioner): single-image and batch command-line interface
//
// Per-image failures (unreadable file, backend error, empty caption) are
// enumerated error classes that callers skip; they never abort a batch.
package imagecaptioner

import (
	"context"
	"fmt"

	"github.com/menta2k/image-captioner/pkg/caption"
	"github.com/menta2k/image-captioner/pkg/client"
	"github.com/menta2k/image-captioner/pkg/llamacpp"
	"github.com/menta2k/image-captioner/pkg/ollama"
	"github.com/menta2k/image-captioner/pkg/types"
)

// Version of the image captioner library
const Version = "1.0.0"

// Captioner provides a high-level interface for image captioning
type Captioner struct {
	engine *caption.Engine
}

// New creates a Captioner for the given backend ("ollama" or "llamacpp"),
// server URL and model, with default generation parameters
func New(backend, serverURL, model string) (*Captioner, error) {
	return NewWithConfig(backend, serverURL, caption.Config{Model: model})
}

// NewWithConfig creates a Captioner with custom engine configuration
func NewWithConfig(backend, serverURL string, engineConfig caption.Config) (*Captioner, error) {
	visionClient, err := NewVisionClient(backend, serverURL)
	if err != nil {
		return nil, err
	}
	return &Captioner{
		engine: caption.NewEngineWithConfig(visionClient, engineConfig),
	}, nil
}

// NewVisionClient creates a backend client by name
func NewVisionClient(backend, serverURL string) (client.VisionClient, error) {
	switch backend {
	case "ollama":
		if serverURL == "" {
			serverURL = "http://localhost:11434"
		}
		return ollama.NewClient(serverURL)
	case "llamacpp":
		return llamacpp.NewClient(serverURL)
	default:
		return nil, fmt.Errorf("unknown backend: %s (use 'ollama' or 'llamacpp')", backend)
	}
}

// Warmup runs one inference pass over a synthetic blank image. Call it
// once after construction; a failure means the model is unusable.
func (c *Captioner) Warmup(ctx context.Context) error {
	return c.engine.Warmup(ctx)
}

// CaptionFile generates a cleaned caption for a single image path or URL
func (c *Captioner) CaptionFile(ctx context.Context, path string) (string, error) {
	return c.engine.CaptionImage(ctx, path)
}

// CaptionBatch captions paths sequentially, returning a record per
// success in input order and reporting failures on the error stream
func (c *Captioner) CaptionBatch(ctx context.Context, paths []string) ([]types.CaptionResult, error) {
	return c.engine.CaptionBatch(ctx, paths)
}

// TestVision checks that the model can actually see images
func (c *Captioner) TestVision(ctx context.Context) (string, error) {
	return c.engine.TestVision(ctx)
}

// CleanCaption strips boilerplate phrasing from a raw caption and
// capitalizes the result
func CleanCaption(raw string) string {
	return caption.CleanCaption(raw)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
