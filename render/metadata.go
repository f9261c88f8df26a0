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
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/daftarhadir/sheet"
)

// addMetadata sets the document information dictionary and attaches an XMP
// metadata stream to the document catalog.
func addMetadata(out *pdf.Writer, req *sheet.Request, opt *Options) error {
	now := time.Now
	if opt.Now != nil {
		now = opt.Now
	}
	created := now()

	o := opt.Sheet.WithDefaults()
	title := "Daftar Hadir " + req.Name
	author := o.Signatories.PreparerName

	out.GetMeta().Info = &pdf.Info{
		Title:        pdf.TextString(title),
		Author:       pdf.TextString(author),
		Subject:      pdf.TextString("Bulan " + req.Period),
		Creator:      pdf.TextString(opt.Creator),
		Producer:     "seehuhn.de/go/pdf",
		CreationDate: pdf.Date(created),
	}

	dc := &xmp.DublinCore{}
	dc.Title.Set(language.MustParse("x-default"), title)
	dc.Title.Set(o.Locale.Tag(), title)
	if author != "" {
		dc.Creator.Append(xmp.NewProperName(author))
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(created)

	packet := xmp.NewPacket()
	packet.Set(dc, basic)

	// The metadata stream is left uncompressed, so that it can be found by
	// tools which do not parse PDF.
	ref := out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := out.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = packet.Write(stm, nil)
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}
	out.GetMeta().Catalog.Metadata = ref

	return nil
}
