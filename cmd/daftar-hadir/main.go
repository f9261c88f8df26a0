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

// Daftar-hadir writes the attendance sheet of a daily casual worker
// ("Daftar Hadir Tenaga Lepas Harian") as a PDF file.
//
// The sheet data is read from a YAML or JSON file given with -i.  If no
// file is given and stdin is a terminal, the data is asked for
// interactively.  Otherwise it is read from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/daftarhadir/internal/buildinfo"
	"seehuhn.de/go/daftarhadir/internal/config"
	"seehuhn.de/go/daftarhadir/internal/prompt"
	"seehuhn.de/go/daftarhadir/render"
	"seehuhn.de/go/daftarhadir/sheet"
)

const toolName = "daftar-hadir"

func main() {
	configFile := flag.String("c", "", "TOML configuration file")
	envFile := flag.String("e", ".env", "file with environment variables, ignored if missing")
	in := flag.String("i", "", "request file (YAML or JSON), \"-\" for stdin")
	outDir := flag.String("o", "", "output directory (overrides the configuration)")
	verbose := flag.Bool("v", false, "show debug output")
	version := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short(toolName))
		return
	}
	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "error: unexpected arguments")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, cfg, *in, log)
	if errors.Is(err, prompt.ErrAborted) {
		os.Exit(130)
	} else if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, in string, log logrus.FieldLogger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var req *sheet.Request
	switch {
	case in == "" && term.IsTerminal(int(os.Stdin.Fd())):
		req, err = prompt.Ask(ctx, prompt.Terminal(), nil)
	case in == "" || in == "-":
		req, err = readRequest(os.Stdin, loc)
	default:
		req, err = readRequestFile(in, loc)
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"name": req.Name,
		"days": req.Range.Len(),
	}).Debug("request read")

	opt := &render.Options{
		Sheet:   cfg.SheetOptions(),
		Dir:     cfg.OutputDir,
		Creator: buildinfo.Short(toolName),
	}
	path, err := render.Generate(ctx, req, opt)
	if err != nil {
		return err
	}
	if path == "" {
		log.Info("date range is incomplete, no sheet written")
		return nil
	}
	log.WithField("file", path).Info("sheet written")
	return nil
}

func readRequestFile(fname string, loc *time.Location) (*sheet.Request, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	req, err := readRequest(fd, loc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return req, nil
}

// readRequest decodes a request in YAML format.  Since JSON is a subset
// of YAML, JSON input is accepted, too.  Timestamps are converted to
// calendar dates in loc.
func readRequest(r io.Reader, loc *time.Location) (*sheet.Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	form := &sheet.Form{}
	err := dec.Decode(form)
	if err == io.EOF {
		return nil, errors.New("empty request")
	} else if err != nil {
		return nil, err
	}
	return form.Request(loc)
}

func newLogger(cfg *config.Config) (*logrus.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log, nil
}
