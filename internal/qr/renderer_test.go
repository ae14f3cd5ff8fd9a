package qr_test

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traittune/sharing/internal/domain"
	"github.com/traittune/sharing/internal/logger"
	"github.com/traittune/sharing/internal/qr"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    qr.Format
		wantErr bool
	}{
		{"", qr.FormatPNG, false},
		{"PNG", qr.FormatPNG, false},
		{"jpg", qr.FormatJPEG, false},
		{"JPEG", qr.FormatJPEG, false},
		{"gif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := qr.ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	r := qr.NewRenderer(qr.Config{Size: 128})
	defer r.Close()

	data := "https://traittune.com/qr/5f0c1b7e-1d1a-4c55-9a2e-0f3f1b8a6c11"

	png, err := r.Render(context.Background(), data, "png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", png.ContentType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(png.Data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 128, cfg.Width)

	jpg, err := r.Render(context.Background(), data, "jpeg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", jpg.ContentType)

	_, format, err = image.DecodeConfig(bytes.NewReader(jpg.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestRenderer_RenderValidation(t *testing.T) {
	r := qr.NewRenderer(qr.Config{})
	defer r.Close()

	_, err := r.Render(context.Background(), "", "png")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = r.Render(context.Background(), "data", "bmp")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRenderer_CancelledContext(t *testing.T) {
	r := qr.NewRenderer(qr.Config{})
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, "data", "png")
	require.ErrorIs(t, err, context.Canceled)
}
