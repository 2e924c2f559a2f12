package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/familybridge/familybridge/internal/scan"
)

// Scan accepts a multipart document upload and runs the analyzer. Only the
// file size is checked; the analysis itself is the configured Analyzer's
// business. The extraction lands in navigation state so the intake wizard can
// pre-fill from it.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	visitorID := h.visitorID(r)

	// Cap the request body somewhat above the gate so oversized uploads are
	// rejected rather than buffered in full; the gate itself stays exact.
	r.Body = http.MaxBytesReader(w, r.Body, scan.MaxFileSize+1024*1024)
	file, header, err := r.FormFile("document")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			Error(w, http.StatusBadRequest, "file_too_large")
			return
		}
		Error(w, http.StatusBadRequest, "no_file_selected")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Debug("failed to close upload", "error", closeErr)
		}
	}()

	upload := &scan.Upload{Name: header.Filename, Size: header.Size}
	extraction, err := h.analyzer.Analyze(r.Context(), upload)
	if err != nil {
		switch {
		case errors.Is(err, scan.ErrNoFileSelected):
			Error(w, http.StatusBadRequest, "no_file_selected")
		case errors.Is(err, scan.ErrFileTooLarge):
			Error(w, http.StatusBadRequest, "file_too_large")
		case errors.Is(err, context.Canceled):
			// Client navigated away mid-"analysis"; nothing to report.
		default:
			slog.Error("Scan failed", "error", err, "visitor_id", visitorID)
			Error(w, http.StatusInternalServerError, "scan_failed")
		}
		return
	}

	st := h.sessions.GetOrCreate(visitorID)
	st.Extraction = extraction
	h.sessions.Save(visitorID, st)

	slog.Info("Scan complete", "visitor_id", visitorID, "file", header.Filename, "size", header.Size)
	JSON(w, http.StatusOK, map[string]interface{}{
		"status":     "complete",
		"extraction": extraction,
	})
}
