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

// Package server provides the HTTP interface for downloading attendance
// sheets.
package server

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/daftarhadir/internal/buildinfo"
	"seehuhn.de/go/daftarhadir/internal/config"
	"seehuhn.de/go/daftarhadir/render"
	"seehuhn.de/go/daftarhadir/sheet"
)

// Server is the HTTP server.
type Server struct {
	router *gin.Engine
	log    logrus.FieldLogger
	addr   string
	opt    render.Options
	loc    *time.Location

	maxBodyBytes int64
	maxDays      int
}

// New creates a server using the settings from cfg.
func New(cfg *config.Config, log logrus.FieldLogger) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	s := &Server{
		router: gin.New(),
		log:    log,
		addr:   cfg.Listen,
		opt: render.Options{
			Sheet:   cfg.SheetOptions(),
			Creator: buildinfo.Short("daftar-hadir-server"),
		},
		loc:          loc,
		maxBodyBytes: int64(cfg.MaxBodyBytes),
		maxDays:      cfg.MaxDays,
	}
	s.router.Use(s.logRequests, gin.Recovery())
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.health)

	api := s.router.Group("/api")
	{
		api.POST("/sheets", s.createSheet)
	}
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address and serves requests.
func (s *Server) Run() error {
	s.log.WithField("addr", s.addr).Info("listening")
	return s.router.Run(s.addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": buildinfo.Version(),
	})
}

// createSheet renders the sheet for the request in the body and returns it
// as a download.
func (s *Server) createSheet(c *gin.Context) {
	if s.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes)
	}
	var form sheet.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, err := form.Request(s.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if n := req.Range.Len(); s.maxDays > 0 && n > s.maxDays {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("date range has %d days, at most %d are allowed", n, s.maxDays),
		})
		return
	}

	buf := &bytes.Buffer{}
	err = render.Write(c.Request.Context(), buf, req, &s.opt)
	if errors.Is(err, sheet.ErrNoDateRange) {
		c.Status(http.StatusNoContent)
		return
	} else if err != nil {
		s.log.WithError(err).WithField("name", req.Name).Error("cannot render sheet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot render sheet"})
		return
	}

	s.log.WithFields(logrus.Fields{
		"name": req.Name,
		"days": req.Range.Len(),
		"size": buf.Len(),
	}).Debug("sheet rendered")

	c.Header("Content-Disposition", contentDisposition(req.Name))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func contentDisposition(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{
		"filename": render.FileName(name),
	})
}

func (s *Server) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.log.WithFields(logrus.Fields{
		"method":   c.Request.Method,
		"path":     c.Request.URL.Path,
		"status":   c.Writer.Status(),
		"duration": time.Since(start),
	}).Info("request")
}
