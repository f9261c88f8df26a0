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

// Daftar-hadir-server serves attendance sheets over HTTP.
//
// A sheet is requested by posting its data as JSON to /api/sheets.
// The response is the PDF file, sent as a download.
package main

import (
	"flag"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/daftarhadir/internal/buildinfo"
	"seehuhn.de/go/daftarhadir/internal/config"
	"seehuhn.de/go/daftarhadir/internal/server"
)

const toolName = "daftar-hadir-server"

func main() {
	configFile := flag.String("c", "", "TOML configuration file")
	envFile := flag.String("e", ".env", "file with environment variables, ignored if missing")
	listen := flag.String("listen", "", "listen address (overrides the configuration)")
	verbose := flag.Bool("v", false, "show debug output")
	version := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short(toolName))
		return
	}

	cfg, err := config.Load(*configFile, *envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	if level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	log.WithField("version", buildinfo.Version()).Info("starting " + toolName)
	srv, err := server.New(cfg, log)
	if err != nil {
		log.Fatal(err)
	}
	err = srv.Run()
	if err != nil {
		log.Fatal(err)
	}
}
