// Package devserver implements the analysis service HTTP boundary with a
// simulated pipeline, so the client side can be run and tested end to end
// without the real ML backend.
package devserver

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vidsense/config"
)

// Server serves the three analysis endpoints over an in-memory job store.
type Server struct {
	engine    *gin.Engine
	store     *jobStore
	uploadDir string
	stepDelay time.Duration
}

// NewServer creates a dev server that saves uploads under uploadDir and
// advances the simulated pipeline one stage per stepDelay.
func NewServer(uploadDir string, stepDelay time.Duration) *Server {
	s := &Server{
		store:     newJobStore(),
		uploadDir: uploadDir,
		stepDelay: stepDelay,
	}

	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	r.POST("/upload-video/", s.handleUpload)
	r.POST("/analyze-video/", s.handleAnalyze)
	r.GET("/analysis/:job_id", s.handleStatus)

	s.engine = r
	return s
}

// Handler exposes the router for http.Server and httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// handleUpload handles POST /upload-video/
func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile(config.UploadFieldName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": fmt.Sprintf("missing %s field: %v", config.UploadFieldName, err)})
		return
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error uploading video: %v", err)})
		return
	}

	dst := filepath.Join(s.uploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Error uploading video: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Video '%s' uploaded successfully!", file.Filename),
		"filename": file.Filename,
	})
}

// analyzeRequest is the body of POST /analyze-video/
type analyzeRequest struct {
	VideoFilename string `json:"video_filename"`
}

// handleAnalyze handles POST /analyze-video/
func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON payload"})
		return
	}

	videoPath := filepath.Join(s.uploadDir, filepath.Base(req.VideoFilename))
	if _, err := os.Stat(videoPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Video file '%s' not found.", req.VideoFilename)})
		return
	}

	jobID := uuid.NewString()
	s.store.create(jobID)
	go s.runPipeline(jobID, req.VideoFilename)

	c.JSON(http.StatusOK, gin.H{"job_id": jobID})
}

// handleStatus handles GET /analysis/:job_id
func (s *Server) handleStatus(c *gin.Context) {
	jobID := c.Param("job_id")
	snapshot, ok := s.store.get(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Job '%s' not found.", jobID)})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
