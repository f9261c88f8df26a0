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

// Package sheet describes the attendance sheet for daily casual workers
// ("Daftar Hadir Tenaga Lepas Harian", TLH) and computes its page layout.
//
// A [Request] holds the data entered into the form: organisational
// metadata, an inclusive date range, a set of holidays and the signing
// date.  [Build] turns a request into a [Layout], a list of boxes and text
// items positioned on a landscape legal page.  All coordinates are in
// millimetres, measured from the top-left corner of the page with the y
// axis pointing down.  The layout contains no PDF specific information;
// see the package seehuhn.de/go/daftarhadir/render for drawing it.
package sheet
