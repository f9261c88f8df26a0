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

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Locale selects the language of month names in date labels.
type Locale int

// The supported locales.
const (
	English Locale = iota
	Indonesian
)

var supportedLocales = []language.Tag{
	language.English,
	language.Indonesian,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// MatchLocale returns the supported locale which best matches the BCP 47
// language tag s.  Unknown or malformed tags give English.
func MatchLocale(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return English
	}
	return Locale(idx)
}

// Tag returns the language tag of the locale.
func (l Locale) Tag() language.Tag {
	if l < 0 || int(l) >= len(supportedLocales) {
		return language.English
	}
	return supportedLocales[l]
}

var monthNames = map[Locale][12]string{
	English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	Indonesian: {
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	},
}

var shortMonthNames = map[Locale][12]string{
	English: {
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Indonesian: {
		"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
		"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
	},
}

func (l Locale) month(m time.Month, short bool) string {
	names, ok := monthNames[l]
	if short {
		names, ok = shortMonthNames[l]
	}
	if !ok || m < time.January || m > time.December {
		return m.String()
	}
	return names[m-1]
}

// ShortDate formats d for a column header, for example "05 Jan 24".
func (l Locale) ShortDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d %s %02d", d.Day, l.month(d.Month, true), d.Year%100)
}

// LongDate formats d for the signature block, for example "5 January 2024".
func (l Locale) LongDate(d Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", d.Day, l.month(d.Month, false), d.Year)
}
