// seehuhn.de/go/daftarhadir - attendance sheets for daily casual workers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/daftarhadir/sheet"
)

const ptPerMM = 72 / 25.4

// mm converts a length from millimetres to PDF points.
func mm(x float64) float64 {
	return x * ptPerMM
}

// lineWidth is the width of the table rules, in millimetres.
const lineWidth = 0.2

var (
	black = color.DeviceGray(0)
	white = color.DeviceGray(1)
	gray  = color.DeviceRGB{117.0 / 255, 117.0 / 255, 117.0 / 255}
)

// canvas receives the drawing operations for one page.
// All coordinates are in PDF points, with the origin in the bottom-left
// corner of the page.
type canvas interface {
	// rect draws the outline of a rectangle.  If fill is non-nil, the
	// rectangle is filled first.
	rect(x, y, w, h float64, fill color.Color)

	// textWidth returns the width of s in the given font and size.
	textWidth(style sheet.Style, size float64, s string) float64

	// showText draws s, using m as the text matrix.
	showText(m matrix.Matrix, style sheet.Style, size float64, s string)
}

// draw converts the layout to PDF coordinates and sends it to c.
func draw(c canvas, l *sheet.Layout) {
	height := mm(l.Height)

	for _, b := range l.Boxes {
		var fill color.Color
		switch b.Fill {
		case sheet.FillWhite:
			fill = white
		case sheet.FillGray:
			fill = gray
		}
		c.rect(mm(b.X), height-mm(b.Y+b.H), mm(b.W), mm(b.H), fill)
	}

	for _, t := range l.Texts {
		if t.Text == "" {
			continue
		}
		x, y := mm(t.X), height-mm(t.Y)
		if t.Align == sheet.AlignCenter {
			x -= c.textWidth(t.Style, t.Size, t.Text) / 2
		}
		m := matrix.Translate(x, y)
		if t.Rotated {
			m = matrix.Matrix{0, 1, -1, 0, x, y}
		}
		c.showText(m, t.Style, t.Size, t.Text)
	}
}

// pageCanvas draws onto a page of a PDF document.
type pageCanvas struct {
	page  *document.Page
	fonts map[sheet.Style]font.Instance
}

func newPageCanvas(page *document.Page) *pageCanvas {
	page.SetLineWidth(mm(lineWidth))
	page.SetStrokeColor(black)
	return &pageCanvas{
		page: page,
		fonts: map[sheet.Style]font.Instance{
			sheet.Regular: standard.Helvetica.New(),
			sheet.Bold:    standard.HelveticaBold.New(),
		},
	}
}

// The fill colour must be set before the path is started.
func (c *pageCanvas) rect(x, y, w, h float64, fill color.Color) {
	if fill == nil {
		c.page.Rectangle(x, y, w, h)
		c.page.Stroke()
		return
	}
	c.page.SetFillColor(fill)
	c.page.Rectangle(x, y, w, h)
	c.page.FillAndStroke()
}

func (c *pageCanvas) textWidth(style sheet.Style, size float64, s string) float64 {
	c.page.TextSetFont(c.fonts[style], size)
	return c.page.TextLayout(nil, s).TotalWidth()
}

func (c *pageCanvas) showText(m matrix.Matrix, style sheet.Style, size float64, s string) {
	c.page.SetFillColor(black)
	c.page.TextBegin()
	c.page.TextSetFont(c.fonts[style], size)
	c.page.TextSetMatrix(m)
	c.page.TextShow(s)
	c.page.TextEnd()
}
