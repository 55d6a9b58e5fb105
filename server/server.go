// Package server exposes the portfolio valuation over HTTP, for a browser
// dashboard to upload an investments file and display the results.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/etnz/investview"
	"github.com/etnz/investview/agent"
	"github.com/etnz/investview/date"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultMaxUploadBytes limits the size of an uploaded investments file.
const DefaultMaxUploadBytes = 1 << 20

// Options configure a Server.
type Options struct {
	// Generator answers the insights requests. Nil disables the insights route.
	Generator agent.Generator
	// Currency of the amounts, used in the text summary. Defaults to BRL.
	Currency string
	// MaxUploadBytes defaults to DefaultMaxUploadBytes.
	MaxUploadBytes int64
	// AllowOrigins lists the origins allowed by CORS. Empty allows all origins.
	AllowOrigins []string
}

// Server is the HTTP API. It keeps no state between requests.
type Server struct {
	opts   Options
	router *gin.Engine
}

func New(opts Options) *Server {
	if opts.Currency == "" {
		opts.Currency = "BRL"
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	config := cors.DefaultConfig()
	if len(opts.AllowOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = opts.AllowOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(config))

	s := &Server{opts: opts, router: router}
	router.GET("/health", s.health)
	api := router.Group("/api")
	{
		api.POST("/portfolio", s.portfolio)
		api.POST("/insights", s.insights)
	}
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("serving on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) portfolio(c *gin.Context) {
	on, ok := referenceDay(c)
	if !ok {
		return
	}
	records, ok := s.readRecords(c)
	if !ok {
		return
	}
	data, err := json.Marshal(gin.H{
		"records":   records,
		"aggregate": investview.Evaluate(records, on),
		"series":    investview.Series(records, on),
	})
	if err != nil {
		log.Printf("cannot encode portfolio: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot encode the portfolio valuation"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) insights(c *gin.Context) {
	if s.opts.Generator == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "insights are not configured"})
		return
	}
	on, ok := referenceDay(c)
	if !ok {
		return
	}
	records, ok := s.readRecords(c)
	if !ok {
		return
	}

	summary := investview.Summarize(investview.Evaluate(records, on), s.opts.Currency)
	insights, err := agent.Insights(c.Request.Context(), s.opts.Generator, summary)
	if err != nil {
		log.Printf("insights failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate insights. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary, "insights": insights})
}

// referenceDay reads the optional "on" query parameter, today by default.
func referenceDay(c *gin.Context) (date.Date, bool) {
	q := c.Query("on")
	if q == "" {
		return date.Today(), true
	}
	on, err := date.Parse(q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return date.Date{}, false
	}
	return on, true
}

// readRecords parses the investments file sent as the request body, or as
// the "file" field of a multipart form. On failure it writes the error response.
func (s *Server) readRecords(c *gin.Context) ([]investview.Record, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxUploadBytes)

	var r io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil {
			abortWithError(c, fmt.Errorf("missing investments file: %w", err))
			return nil, false
		}
		f, err := fh.Open()
		if err != nil {
			abortWithError(c, err)
			return nil, false
		}
		defer f.Close()
		r = f
	}

	records, err := investview.ParseReader(r)
	if err != nil {
		abortWithError(c, err)
		return nil, false
	}
	return records, true
}

func abortWithError(c *gin.Context, err error) {
	var perr *investview.ParseError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &perr):
		c.JSON(http.StatusBadRequest, gin.H{"error": perr.Error(), "kind": perr.KindName()})
	case errors.As(err, &maxErr):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file is larger than %d bytes", maxErr.Limit)})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
