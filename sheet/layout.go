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

package sheet

// Page size of a legal sheet in landscape orientation, in millimetres.
const (
	PageWidth  = 355.6
	PageHeight = 215.9
)

// Geometry of the attendance table, in millimetres.
const (
	tableLeft   = 10.0
	tableTop    = 70.0
	noWidth     = 10.0
	nameWidth   = 40.0
	dayLeft     = tableLeft + noWidth + nameWidth
	DayWidth    = 11.0
	RowHeight   = 22.0
	nameLeading = 5.0

	signatureOffset = 40.0 // from the top of the data row
	signatureGap    = 30.0 // from the role titles to the names
)

// Font sizes, in PDF points.
const (
	titleSize = 12.0
	bodySize  = 10.0
)

// Title is the first line of the sheet heading.
const Title = "DAFTAR HADIR TENAGA LEPAS HARIAN (TLH)"

// Style is the font style of a text item.
type Style uint8

// The font styles used on the sheet.
const (
	Regular Style = iota
	Bold
)

// Align describes how a text item is positioned relative to its anchor.
type Align uint8

// Text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
)

// Text is a single line of text on the sheet.
type Text struct {
	// X, Y give the anchor on the text baseline.
	X, Y float64

	Text  string
	Style Style
	Size  float64 // in PDF points
	Align Align

	// Rotated text runs upwards, turned by 90 degrees counter-clockwise
	// around the anchor.
	Rotated bool
}

// Fill is the fill colour of a box.
type Fill uint8

// The fill colours.  Boxes are always outlined in black.
const (
	NoFill Fill = iota
	FillWhite
	FillGray
)

// Box is a rectangle on the sheet.
// X, Y give the top-left corner.
type Box struct {
	X, Y, W, H float64
	Fill       Fill
}

// Day describes the column of one day in the attendance table.
type Day struct {
	Date   Date
	Label  string
	Shaded bool
	Header Box
	Cell   Box
}

// Layout is the complete content of an attendance sheet.
type Layout struct {
	Width, Height float64

	Boxes []Box
	Texts []Text

	// Days lists the table columns in order.  The boxes of the columns are
	// also included in Boxes.
	Days []Day

	// NameLines are the lines of the worker name, in order.
	NameLines []string
}

// Signatories lists the fixed parts of the signature block.
type Signatories struct {
	ApproverTitle string // heading above the approver
	ApproverRole  string
	ApproverName  string
	PayerTitle    string
	VerifierTitle string
	PreparerTitle string // heading above the person who made the sheet
	PreparerRole  string
	PreparerName  string
}

// DefaultSignatories are the signatories printed if none are configured.
var DefaultSignatories = Signatories{
	ApproverTitle: "Mengetahui/Menyetujui:",
	ApproverRole:  "Kepala Bagian Pengembangan Produk TI",
	ApproverName:  "Alfian Akbar Gozali",
	PayerTitle:    "Fiat Bayar",
	VerifierTitle: "Verifikasi",
	PreparerTitle: "Dibuat Oleh,",
	PreparerRole:  "Staff Bagian Pengembangan Produk TI",
	PreparerName:  "Amira Nur Khalipah",
}

// Options control the fixed text of the sheet.
// Empty fields are replaced by their defaults.
type Options struct {
	Institution string // second title line, default "TELKOM UNIVERSITY"
	City        string // printed before the signing date, default "Bandung"
	Signatories Signatories
	Locale      Locale
}

// WithDefaults returns a copy of opt, with empty fields replaced by their
// default values.  opt may be nil.
func (opt *Options) WithDefaults() Options {
	res := Options{}
	if opt != nil {
		res = *opt
	}
	if res.Institution == "" {
		res.Institution = "TELKOM UNIVERSITY"
	}
	if res.City == "" {
		res.City = "Bandung"
	}
	if res.Signatories == (Signatories{}) {
		res.Signatories = DefaultSignatories
	}
	return res
}

// Build computes the layout of the attendance sheet for req.
// If the date range of req is incomplete, ErrNoDateRange is returned.
// Apart from this, the request is not validated.
func Build(req *Request, opt *Options) (*Layout, error) {
	if !req.Range.Complete() {
		return nil, ErrNoDateRange
	}
	o := opt.WithDefaults()

	l := &Layout{
		Width:  PageWidth,
		Height: PageHeight,
	}
	l.addHeading(req, &o)
	l.addTable(req, &o)
	l.addSignatures(req, &o)
	return l, nil
}

func (l *Layout) text(x, y float64, s string, style Style, size float64) *Text {
	l.Texts = append(l.Texts, Text{X: x, Y: y, Text: s, Style: style, Size: size})
	return &l.Texts[len(l.Texts)-1]
}

func (l *Layout) addHeading(req *Request, o *Options) {
	l.text(l.Width/2, 15, Title, Bold, titleSize).Align = AlignCenter
	l.text(l.Width/2, 22, o.Institution, Bold, titleSize).Align = AlignCenter

	fields := []struct{ label, value string }{
		{"Kategori TLH", req.Category},
		{"Unit / Bagian", req.Unit},
		{"Direktorat/Fakultas", req.Directorate},
		{"Periode", "Bulan " + req.Period},
	}
	for i, f := range fields {
		y := 35 + 7*float64(i)
		l.text(10, y, f.label, Regular, bodySize)
		l.text(55, y, ": "+f.value, Regular, bodySize)
	}
}

func (l *Layout) addTable(req *Request, o *Options) {
	y := tableTop

	// header row
	l.Boxes = append(l.Boxes,
		Box{X: tableLeft, Y: y, W: noWidth, H: RowHeight},
		Box{X: tableLeft + noWidth, Y: y, W: nameWidth, H: RowHeight})
	l.text(13, y+12, "No", Bold, bodySize)
	l.text(35, y+12, "Nama", Bold, bodySize)

	days := Days(req.Range)
	l.Days = make([]Day, len(days))
	for i, d := range days {
		x := dayLeft + float64(i)*DayWidth
		col := &l.Days[i]
		col.Date = d
		col.Label = o.Locale.ShortDate(d)
		col.Shaded = req.IsShaded(d)
		col.Header = Box{X: x, Y: y, W: DayWidth, H: RowHeight}
		l.Boxes = append(l.Boxes, col.Header)
		l.text(x+7, y+19, col.Label, Bold, bodySize).Rotated = true
	}

	// data row
	y += RowHeight
	l.Boxes = append(l.Boxes, Box{X: tableLeft, Y: y, W: noWidth, H: RowHeight})
	l.text(14, y+7, "1", Regular, bodySize)
	l.Boxes = append(l.Boxes, Box{X: tableLeft + noWidth, Y: y, W: nameWidth, H: RowHeight})
	l.NameLines = WrapName(req.Name)
	for i, line := range l.NameLines {
		l.text(22, y+7+float64(i)*nameLeading, line, Regular, bodySize)
	}
	for i := range l.Days {
		col := &l.Days[i]
		fill := FillWhite
		if col.Shaded {
			fill = FillGray
		}
		col.Cell = Box{X: col.Header.X, Y: y, W: DayWidth, H: RowHeight, Fill: fill}
		l.Boxes = append(l.Boxes, col.Cell)
	}
}

func (l *Layout) addSignatures(req *Request, o *Options) {
	s := &o.Signatories
	y := tableTop + RowHeight + signatureOffset
	w := l.Width

	l.text(27, y, s.ApproverTitle, Regular, bodySize)
	l.text(15, y+7, s.ApproverRole, Regular, bodySize)
	l.text(w/3+15, y, s.PayerTitle, Regular, bodySize).Align = AlignCenter
	l.text(w/2+20, y, s.VerifierTitle, Regular, bodySize)

	l.text(w-80, y-7, o.City+", "+o.Locale.LongDate(req.SignDate), Regular, bodySize)
	l.text(w-60, y, s.PreparerTitle, Regular, bodySize)
	l.text(w-80, y+7, s.PreparerRole, Regular, bodySize)

	l.text(30, y+signatureGap, s.ApproverName, Regular, bodySize)
	l.text(w-65, y+signatureGap, s.PreparerName, Regular, bodySize)
}
