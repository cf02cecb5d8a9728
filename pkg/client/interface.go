package client

import (
	"context"

	"github.com/menta2k/image-captioner/pkg/types"
)

type VisionClient interface {
	SimpleQuery(ctx context.Context, model, prompt, imgB64 string) (string, error)
	Caption(ctx context.Context, model, prompt, imgB64 string, opts types.GenerationOptions) (string, error)
}
