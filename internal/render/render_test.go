package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rejectmonitor/internal/models"
)

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func isWhite(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestRender_EmptySignal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static", "chart.png")
	r := New(path)

	data, err := r.Render(context.Background(), models.Summary{Empty: true})
	require.NoError(t, err)

	img := decode(t, data)
	b := img.Bounds()
	assert.Equal(t, defaultWidth, b.Dx())
	assert.Equal(t, defaultHeight, b.Dy())
	assert.True(t, isWhite(img, 0, 0))
	assert.True(t, isWhite(img, b.Dx()-1, b.Dy()-1))

	// The message sits in the middle band of the image.
	inked := 0
	for y := b.Dy()/2 - 10; y < b.Dy()/2+10; y++ {
		for x := b.Dx()/2 - 70; x < b.Dx()/2+70; x++ {
			if !isWhite(img, x, y) {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0, "expected text near the centre")

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestRender_NoBarsUsesEmptyImage(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "chart.png"))

	empty, err := r.Render(context.Background(), models.Summary{Empty: true})
	require.NoError(t, err)
	noBars, err := r.Render(context.Background(), models.Summary{})
	require.NoError(t, err)

	assert.Equal(t, empty, noBars)
}

func TestRender_BarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	r := New(path)

	s := models.Summary{Totals: []models.ProcessTotal{
		{Process: "LINE 1", Total: 8},
		{Process: "PH 2", Total: 3},
		{Process: "VARNISH", Total: 0},
	}}

	data, err := r.Render(context.Background(), s)
	require.NoError(t, err)

	img := decode(t, data)
	assert.Equal(t, defaultWidth, img.Bounds().Dx())
	assert.Equal(t, defaultHeight, img.Bounds().Dy())

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, stored, "file is overwritten with the latest render")
}

func TestRender_ZeroAndNegativeTotals(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "chart.png"))

	for _, s := range []models.Summary{
		{Totals: []models.ProcessTotal{{Process: "LINE 1", Total: 0}}},
		{Totals: []models.ProcessTotal{{Process: "LINE 1", Total: -4}, {Process: "LINE 2", Total: 6}}},
	} {
		data, err := r.Render(context.Background(), s)
		require.NoError(t, err)
		decode(t, data)
	}
}

func TestRender_ManyProcessesWidensImage(t *testing.T) {
	r := New("")

	var totals []models.ProcessTotal
	for i := 1; i <= 60; i++ {
		totals = append(totals, models.ProcessTotal{Process: fmt.Sprintf("PH %d", i), Total: float64(i)})
	}

	data, err := r.Render(context.Background(), models.Summary{Totals: totals})
	require.NoError(t, err)
	img := decode(t, data)
	assert.Greater(t, img.Bounds().Dx(), defaultWidth)
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("").Render(ctx, models.Summary{Empty: true})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRender_Size(t *testing.T) {
	tests := []struct {
		name       string
		renderer   *Renderer
		wantWidth  int
		wantHeight int
	}{
		{"default", New(""), defaultWidth, defaultHeight},
		{"custom size", New("", WithSize(640, 480)), 640, 480},
		{"non-positive keeps default", New("", WithSize(0, -1)), defaultWidth, defaultHeight},
		{"zero value", &Renderer{}, defaultWidth, defaultHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []models.Summary{
				{Empty: true},
				{Totals: []models.ProcessTotal{{Process: "LINE 1", Total: 8}}},
			} {
				data, err := tt.renderer.Render(context.Background(), s)
				require.NoError(t, err)

				img := decode(t, data)
				assert.Equal(t, tt.wantWidth, img.Bounds().Dx())
				assert.Equal(t, tt.wantHeight, img.Bounds().Dy())
			}
		})
	}
}
