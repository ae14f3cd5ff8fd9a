package qr

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/gabriel-vasile/mimetype"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/logger"
)

// Format is an output image format
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

const (
	defaultSize        = 256
	defaultConcurrency = 4
	jpegQuality        = 90
)

// ParseFormat normalizes a requested format. Blank means png.
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	}
	return "", domain.NewValidationError("format", fmt.Sprintf("unsupported image format %q", format))
}

// Image is a rendered QR code
type Image struct {
	Data        []byte
	ContentType string
}

// Renderer encodes data into a QR code image
//
//go:generate mockgen -source=renderer.go -destination=../mocks/renderer.go -package=mocks -mock_names=Renderer=MockRenderer
type Renderer interface {
	// Render encodes data as a QR image in the given format
	Render(ctx context.Context, data string, format string) (*Image, error)

	// Close stops the render worker pool
	Close()
}

// Config holds renderer settings
type Config struct {
	// Size is the image width and height in pixels
	Size int
	// Concurrency bounds simultaneous renders
	Concurrency int
}

type renderer struct {
	size int
	pool pond.ResultPool[*Image]
}

// NewRenderer creates a QR renderer with a bounded worker pool
func NewRenderer(cfg Config) Renderer {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}

	return &renderer{
		size: cfg.Size,
		pool: pond.NewResultPool[*Image](cfg.Concurrency),
	}
}

func (r *renderer) Render(ctx context.Context, data string, format string) (*Image, error) {
	if strings.TrimSpace(data) == "" {
		return nil, domain.NewValidationError("data", "is required")
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	task := r.pool.SubmitErr(func() (*Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return r.encode(data, f)
	})

	img, err := task.Wait()
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "QR code rendered",
		zap.String("format", string(f)),
		zap.Int("bytes", len(img.Data)))
	return img, nil
}

func (r *renderer) encode(data string, format Format) (*Image, error) {
	code, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	var out []byte
	switch format {
	case FormatJPEG:
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, code.Image(r.size), &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("failed to write jpeg: %w", err)
		}
		out = buf.Bytes()
	default:
		out, err = code.PNG(r.size)
		if err != nil {
			return nil, fmt.Errorf("failed to write png: %w", err)
		}
	}

	return &Image{
		Data:        out,
		ContentType: mimetype.Detect(out).String(),
	}, nil
}

func (r *renderer) Close() {
	r.pool.StopAndWait()
}
