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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLicensify(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.go":             "package a\n",
		"b.go":             header + "package b\n",
		"notes.txt":        "package c\n",
		"sub/c.go":         "// Package c is a package.\npackage c\n",
		"_skip/d.go":       "package d\n",
		"testdata/e.go":    "package e\n",
		"sub/.hidden/f.go": "package f\n",
	}
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{
		filepath.Join(root, "a.go"),
		filepath.Join(root, "sub", "c.go"),
	}

	missing, err := licensify(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, missing); d != "" {
		t.Error(d)
	}
	body, _ := os.ReadFile(filepath.Join(root, "a.go"))
	if strings.HasPrefix(string(body), header) {
		t.Error("check mode changed a file")
	}

	missing, err = licensify(root, false)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, missing); d != "" {
		t.Error(d)
	}
	body, _ = os.ReadFile(filepath.Join(root, "sub", "c.go"))
	if string(body) != header+files["sub/c.go"] {
		t.Errorf("unexpected content %q", body)
	}

	missing, err = licensify(root, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(missing) != 0 {
		t.Errorf("headers still missing in %v", missing)
	}
}
