package services

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const posterCaption = "Scan to get the complete menu"

var ErrBadColor = errors.New("invalid color, want #rrggbb")

// QRService renders the scannable code for a menu's public URL.
type QRService struct {
	BaseURL string
}

func NewQRService(baseURL string) *QRService {
	return &QRService{BaseURL: baseURL}
}

func (s *QRService) MenuURL(publicID string) string {
	return fmt.Sprintf("%s/menu/%s", s.BaseURL, publicID)
}

// ParseHexColor reads a #rrggbb value.
func ParseHexColor(in string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if len(in) != 7 || in[0] != '#' {
		return c, ErrBadColor
	}
	n, err := fmt.Sscanf(in, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	if err != nil || n != 3 {
		return c, ErrBadColor
	}
	return c, nil
}

// PNG renders the QR code with the requested colors.
func (s *QRService) PNG(publicID string, size int, fg, bg string) ([]byte, error) {
	fgc, err := ParseHexColor(fg)
	if err != nil {
		return nil, err
	}
	bgc, err := ParseHexColor(bg)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(s.MenuURL(publicID), qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = fgc
	q.BackgroundColor = bgc
	return q.PNG(size)
}

// Poster composes the downloadable image: the QR code with the business name
// and a scan caption underneath.
func (s *QRService) Poster(publicID, businessName string, size int, fg, bg string) ([]byte, error) {
	fgc, err := ParseHexColor(fg)
	if err != nil {
		return nil, err
	}
	bgc, err := ParseHexColor(bg)
	if err != nil {
		return nil, err
	}

	q, err := qrcode.New(s.MenuURL(publicID), qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = fgc
	q.BackgroundColor = bgc
	code := q.Image(size)

	const padding = 20
	const textArea = 100
	w := size + padding*2
	h := size + padding + textArea

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bgc), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(padding, padding, padding+size, padding+size), code, code.Bounds().Min, draw.Src)

	drawCentered(canvas, businessName, w/2, size+padding+35, fgc)
	drawCentered(canvas, posterCaption, w/2, size+padding+65, fgc)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawCentered(dst draw.Image, text string, cx, y int, c color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(cx-width/2, y),
	}
	d.DrawString(text)
}
