package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	imagecaptioner "github.com/menta2k/image-captioner"
	"github.com/menta2k/image-captioner/internal/utils"
	"github.com/menta2k/image-captioner/pkg/caption"
	"github.com/menta2k/image-captioner/pkg/processing"
	"github.com/menta2k/image-captioner/pkg/types"
)

func main() {
	if err := run(); err != nil {
		// Process-level failures are structured and fatal
		js, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(js))
		os.Exit(1)
	}
}

func run() error {
	var backend, url, model, dir, prompt string
	var sendFmt string
	var sendSize int
	var sendQ int
	var maxTokens int
	var temperature float64
	var repeatPenalty float64
	var verbose bool

	flag.StringVar(&backend, "backend", "llamacpp", "backend to use: ollama or llamacpp")
	flag.StringVar(&url, "url", "", "server URL (defaults: ollama=http://localhost:11434, llamacpp=http://localhost:8080)")
	flag.StringVar(&model, "model", "openbmb/minicpm-v4.5", "model name")
	flag.StringVar(&dir, "dir", "", "caption every image file under a directory (batch mode)")
	flag.StringVar(&prompt, "prompt", "", "override the captioning prompt")

	flag.StringVar(&sendFmt, "sendfmt", "jpg", "format sent to the model: jpg|png")
	flag.IntVar(&sendSize, "sendsize", 1536, "max long side sent to the model (px), 0=original")
	flag.IntVar(&sendQ, "sendq", 85, "JPEG quality for image sent to the model (1-100)")

	flag.IntVar(&maxTokens, "maxtokens", 60, "max new tokens generated per caption")
	flag.Float64Var(&temperature, "temperature", 0.7, "sampling temperature")
	flag.Float64Var(&repeatPenalty, "repeatpenalty", 1.2, "repetition penalty")

	flag.BoolVar(&verbose, "v", false, "verbose logging (image info, progress)")
	flag.Parse()

	paths := flag.Args()
	if dir != "" {
		listed, err := utils.ListImageFiles(dir)
		if err != nil {
			return fmt.Errorf("failed to list images in %s: %w", dir, err)
		}
		paths = append(paths, listed...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("usage: %s [flags] image.jpg [image2.jpg ...]", filepath.Base(os.Args[0]))
	}

	captioner, err := imagecaptioner.NewWithConfig(backend, url, caption.Config{
		Model:  model,
		Prompt: prompt,
		Generation: types.GenerationOptions{
			MaxTokens:     maxTokens,
			Temperature:   temperature,
			RepeatPenalty: repeatPenalty,
		},
		Prepare: types.PrepareOptions{
			Format:  sendFmt,
			MaxDim:  sendSize,
			Quality: sendQ,
		},
	})
	if err != nil {
		return err
	}

	ctx := context.Background()

	if verbose {
		log.Printf("backend=%s model=%s inputs=%d", backend, model, len(paths))
		logImageInfo(paths)
	}

	// Load the model once, up front
	if err := captioner.Warmup(ctx); err != nil {
		return err
	}

	// Batch mode for multiple inputs or directory input
	if len(paths) > 1 || dir != "" {
		results, err := captioner.CaptionBatch(ctx, paths)
		if err != nil {
			return err
		}
		out, err := json.Marshal(results)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	// Single-image mode: print the caption or nothing. Per-image failures
	// are reported on stderr but do not affect the exit status.
	result, err := captioner.CaptionFile(ctx, paths[0])
	if err != nil {
		if caption.IsSkippable(err) {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", paths[0], err)
			return nil
		}
		return err
	}
	fmt.Println(result)
	return nil
}

// logImageInfo logs dimensions for each readable input
func logImageInfo(paths []string) {
	processor := processing.NewProcessor()
	for _, path := range paths {
		img, err := processor.LoadImageSmart(path)
		if err != nil {
			log.Printf("%s: unreadable: %v", path, err)
			continue
		}
		info := processor.GetImageInfo(img)
		log.Printf("%s: %dx%d (ratio %.2f)", path, info.Width, info.Height, info.AspectRatio)
	}
}
