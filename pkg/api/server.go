// Package api provides the REST API server for engrave
package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/converter"
	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/interval"
	"github.com/james-see/engrave/pkg/pitch"
)

// @title Engrave API
// @version 1.0
// @description API for transposing pitches, splitting durations and rendering scores as LilyPond
// @host localhost:8080
// @BasePath /api/v1

// Server serves the API using one configuration
type Server struct {
	cfg    *config.Config
	logger *logrus.Logger

	// newConverter builds a converter per request so transposition never leaks between requests
	newConverter func() *converter.Converter
}

// NewServer creates a Server backed by cfg
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:          cfg,
		logger:       cfg.Logger,
		newConverter: func() *converter.Converter { return converter.New(cfg) },
	}
}

// StartServer starts the API server on the specified port
func StartServer(cfg *config.Config, port int) error {
	return NewServer(cfg).Router().Run(fmt.Sprintf(":%d", port))
}

// Router builds the gin engine with every route registered
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/formats", listFormats)
		v1.GET("/transpose", transpose)
		v1.GET("/intervals/:name", describeInterval)
		v1.GET("/durations/split", splitDuration)
		v1.POST("/render", s.render)
		v1.POST("/convert/midi2ly", s.handleMIDIToLilypond)
		v1.POST("/convert/doc2midi", s.handleDocumentToMIDI)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "engrave",
	})
}

// listFormats godoc
// @Summary List supported formats
// @Description Returns a list of supported file formats
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/formats [get]
func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats":     []string{"midi", "lilypond", "yaml", "json"},
		"conversions": converter.GetSupportedConversions(),
	})
}

// transpose godoc
// @Summary Transpose a pitch
// @Description Moves a LilyPond pitch by an interval, respelling past double accidentals
// @Tags theory
// @Produce json
// @Param pitch query string true "Pitch, e.g. c'"
// @Param interval query string true "Interval, e.g. +m3 or -P5"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/transpose [get]
func transpose(c *gin.Context) {
	p, err := pitch.Parse(c.Query("pitch"))
	if err != nil {
		badRequest(c, err)
		return
	}
	i, err := interval.Parse(c.Query("interval"))
	if err != nil {
		badRequest(c, err)
		return
	}
	result := p.Transpose(i)
	c.JSON(http.StatusOK, gin.H{
		"pitch":     result.String(),
		"semitones": result.Semitones(),
	})
}

// describeInterval godoc
// @Summary Describe an interval
// @Description Returns the width of an interval in semitones and staff spaces
// @Tags theory
// @Produce json
// @Param name path string true "Interval, e.g. M9"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/intervals/{name} [get]
func describeInterval(c *gin.Context) {
	i, err := interval.Parse(c.Param("name"))
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"interval":     i.String(),
		"semitones":    i.Semitones(),
		"staff_spaces": i.StaffSpaces(),
	})
}

// splitDuration godoc
// @Summary Split a duration into printable values
// @Description Returns the printable durations, longest first, that sum to the given duration
// @Tags theory
// @Produce json
// @Param duration query string true "Duration as a fraction of a whole note, e.g. 5/8"
// @Success 200 {object} map[string][]string
// @Failure 400 {object} map[string]string
// @Router /api/v1/durations/split [get]
func splitDuration(c *gin.Context) {
	d, err := duration.Parse(c.Query("duration"))
	if err != nil {
		badRequest(c, err)
		return
	}
	parts, err := d.PrintableList()
	if err != nil {
		badRequest(c, err)
		return
	}
	durations := make([]string, len(parts))
	tokens := make([]string, len(parts))
	for i, part := range parts {
		durations[i] = part.String()
		tokens[i], _ = part.Lilypond()
	}
	c.JSON(http.StatusOK, gin.H{"durations": durations, "lilypond": tokens})
}

// render godoc
// @Summary Render a score document
// @Description Converts a YAML or JSON score document into a LilyPond file
// @Tags render
// @Accept json
// @Accept application/x-yaml
// @Produce text/x-lilypond
// @Param transpose query string false "Interval to transpose by"
// @Success 200 {string} string
// @Failure 400 {object} map[string]string
// @Router /api/v1/render [post]
func (s *Server) render(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	conv := s.newConverter()
	if t := c.Query("transpose"); t != "" {
		i, err := interval.Parse(t)
		if err != nil {
			badRequest(c, err)
			return
		}
		conv.Transposition = i
	}

	from := converter.FormatYAML
	if strings.Contains(c.ContentType(), "json") || converter.DetectFormatFromContent(data) == converter.FormatJSON {
		from = converter.FormatJSON
	}
	out, err := conv.Convert(data, from, converter.FormatLilypond)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.Data(http.StatusOK, "text/x-lilypond; charset=utf-8", out)
}

// handleMIDIToLilypond godoc
// @Summary Convert MIDI to LilyPond
// @Description Upload a MIDI file and receive a .ly file
// @Tags convert
// @Accept multipart/form-data
// @Produce text/x-lilypond
// @Param file formData file true "MIDI file to convert"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/midi2ly [post]
func (s *Server) handleMIDIToLilypond(c *gin.Context) {
	s.handleConversion(c, converter.FormatMIDI, converter.FormatLilypond)
}

// handleDocumentToMIDI godoc
// @Summary Convert a score document to MIDI
// @Description Upload a YAML or JSON score document and receive a MIDI file
// @Tags convert
// @Accept multipart/form-data
// @Produce audio/midi
// @Param file formData file true "Score document to convert"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/v1/convert/doc2midi [post]
func (s *Server) handleDocumentToMIDI(c *gin.Context) {
	s.handleConversion(c, converter.FormatYAML, converter.FormatMIDI)
}

func (s *Server) handleConversion(c *gin.Context, fromFormat, toFormat converter.Format) {
	// Get uploaded file
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	// Read file content
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	// documents may be JSON whatever the route says
	if fromFormat == converter.FormatYAML && converter.DetectFormat(header.Filename) == converter.FormatJSON {
		fromFormat = converter.FormatJSON
	}

	result, err := s.newConverter().Convert(data, fromFormat, toFormat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outputExt := ".ly"
	contentType := "text/x-lilypond; charset=utf-8"
	if toFormat == converter.FormatMIDI {
		outputExt = ".mid"
		contentType = "audio/midi"
	}

	// Generate output filename
	outputName := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	if outputName == "" {
		outputName = "converted"
	}
	outputName += outputExt

	s.logger.WithFields(logrus.Fields{"input": header.Filename, "output": outputName, "bytes": len(result)}).Info("converted upload")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", outputName))
	c.Data(http.StatusOK, contentType, result)
}
