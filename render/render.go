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

// Package render draws attendance sheets as PDF files.
//
// The page content is computed by [sheet.Build]; this package converts
// the layout from millimetres to PDF coordinates and writes a single page
// document using the seehuhn.de/go/pdf library.
package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"

	"seehuhn.de/go/daftarhadir/sheet"
)

// Paper is a legal sheet in landscape orientation.
var Paper = &pdf.Rectangle{
	URx: mm(sheet.PageWidth),
	URy: mm(sheet.PageHeight),
}

// Options control the generated files.
type Options struct {
	// Sheet holds the fixed text printed on the sheet.
	Sheet sheet.Options

	// Dir is the directory where [Generate] places the file.
	// The empty string means the current directory.
	Dir string

	// Creator is recorded in the document metadata as the name of the
	// application which produced the file.
	Creator string

	// Now, if set, replaces [time.Now] for the creation date in the
	// metadata.
	Now func() time.Time
}

// Generate renders the attendance sheet for req into the file "DH <name>.pdf"
// inside opt.Dir and returns the path of the new file.
//
// If the date range of req is incomplete, Generate does nothing and
// returns the empty string and a nil error.
func Generate(ctx context.Context, req *sheet.Request, opt *Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !req.Range.Complete() {
		return "", nil
	}
	if opt == nil {
		opt = &Options{}
	}

	path := filepath.Join(opt.Dir, FileName(req.Name))
	fd, err := os.Create(path)
	if err != nil {
		return "", err
	}
	err = Write(ctx, fd, req, opt)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, nil
}

// Write renders the attendance sheet for req as a PDF document to w.
//
// If the date range of req is incomplete, nothing is written and
// [sheet.ErrNoDateRange] is returned.
func Write(ctx context.Context, w io.Writer, req *sheet.Request, opt *Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if opt == nil {
		opt = &Options{}
	}
	layout, err := sheet.Build(req, &opt.Sheet)
	if err != nil {
		return err
	}

	page, err := document.WriteSinglePage(w, Paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	c := newPageCanvas(page)
	draw(c, layout)
	if page.Err != nil {
		return page.Err
	}

	err = addMetadata(page.Out, req, opt)
	if err != nil {
		return err
	}

	return page.Close()
}

// FileName returns the name of the file for the sheet of the given worker.
// Path separators in the name are replaced, so that the file name always
// refers to a file inside the output directory.
func FileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, name)
	return "DH " + name + ".pdf"
}
