package services

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{0, 0, 0, 0xff}, false},
		{"#ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#f97316", color.RGBA{0xf9, 0x73, 0x16, 0xff}, false},
		{"000000", color.RGBA{}, true},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrBadColor, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestQRService_MenuURL(t *testing.T) {
	svc := NewQRService("https://menu.example.com")
	assert.Equal(t, "https://menu.example.com/menu/abc-123", svc.MenuURL("abc-123"))
}

func TestQRService_PNG(t *testing.T) {
	svc := NewQRService("https://menu.example.com")

	data, err := svc.PNG("abc-123", 300, "#000000", "#ffffff")
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestQRService_PNGBadColor(t *testing.T) {
	svc := NewQRService("https://menu.example.com")
	_, err := svc.PNG("abc-123", 300, "black", "#ffffff")
	assert.ErrorIs(t, err, ErrBadColor)
}

func TestQRService_Poster(t *testing.T) {
	svc := NewQRService("https://menu.example.com")

	data, err := svc.Poster("abc-123", "Demo Restaurant", 300, "#000000", "#ffffff")
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	// QR plus padding and the text area underneath
	assert.Equal(t, 340, img.Bounds().Dx())
	assert.Equal(t, 420, img.Bounds().Dy())
}
