package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sawala-tech/lembar/internal/inspect"
	"github.com/sawala-tech/lembar/internal/report"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// extractHandler runs coordinate extraction on one uploaded photo.
func (s *Server) extractHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.extractor == nil {
		s.writeError(w, "extraction not available", http.StatusServiceUnavailable)
		return
	}

	maxBytes := s.maxUploadMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		s.writeError(w, "failed to parse form data", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.writeError(w, "no image file provided", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()
	uploadSizeBytes.Observe(float64(header.Size))

	// The extraction pipeline works on files, so the upload is staged in
	// a transient file that is removed when the request finishes.
	tempPath, err := s.stageUpload(file, header.Filename)
	if err != nil {
		s.writeError(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	defer func() { _ = os.Remove(tempPath) }()

	start := time.Now()
	result := s.extractor.Extract(r.Context(), tempPath)
	extractionDuration.Observe(time.Since(start).Seconds())

	status := "found"
	if result.Empty() {
		status = "empty"
	}
	extractionsTotal.WithLabelValues(status).Inc()

	s.writeJSON(w, http.StatusOK, ExtractResponse{
		Latitude:  result.Latitude,
		Longitude: result.Longitude,
		Found:     !result.Empty(),
	})
}

// reportHandler generates a workbook from a JSON manifest body and streams
// it back as an xlsx download.
func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.generator == nil {
		s.writeError(w, "report generation not available", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadMB*1024*1024)
	var manifest inspect.Manifest
	if err := json.NewDecoder(r.Body).Decode(&manifest); err != nil {
		s.writeError(w, "invalid manifest body", http.StatusBadRequest)
		return
	}
	if err := manifest.Validate(); err != nil {
		s.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := report.Options{
		ScheduleDate: manifest.Date(),
		AssetName:    manifest.AssetName,
	}
	outputPath, err := s.generator.Generate(r.Context(), manifest.Entries, s.templatePath, opts)
	if err != nil {
		reportsTotal.WithLabelValues("error").Inc()
		switch {
		case errors.Is(err, report.ErrTemplateNotFound):
			s.writeError(w, "report template not found", http.StatusInternalServerError)
		case errors.Is(err, report.ErrWriteFailure):
			s.writeError(w, "failed to write report", http.StatusInternalServerError)
		default:
			s.writeError(w, "report generation failed", http.StatusInternalServerError)
		}
		s.logger.Error("report generation failed", "error", err)
		return
	}
	reportsTotal.WithLabelValues("ok").Inc()
	reportRows.Observe(float64(len(manifest.Entries)))

	w.Header().Set("Content-Type", xlsxMIMEType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(outputPath)+"\"")
	http.ServeFile(w, r, outputPath)
}

// stageUpload copies an uploaded file into a transient file, preserving the
// extension so image decoding works.
func (s *Server) stageUpload(file io.Reader, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	tmp, err := os.CreateTemp("", "lembar-upload-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, message string, status int) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
