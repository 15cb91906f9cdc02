package web

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/flashcards/internal/core"
)

// multipartOverhead allows for form boundaries and headers around the file.
const multipartOverhead = 64 * 1024

// UploadResponse is the body of a successful POST /api/upload.
type UploadResponse struct {
	Message   string `json:"message"`
	Filename  string `json:"filename"`
	CardCount int    `json:"cardCount"`
	UploadID  string `json:"uploadId"`
}

// handleUpload accepts a deck in the multipart field "file". The deck must
// parse before it is stored.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, core.ErrFileTooLarge)
			return
		}
		respondError(w, r, core.ErrNoFile)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, core.ErrNoFile)
		return
	}
	defer file.Close()

	ctx := WithRequestMetadata(r.Context(), r)
	res, err := s.service.SaveUpload(ctx, header.Filename, file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Message:   core.UploadSuccessMessage,
		Filename:  res.Filename,
		CardCount: res.CardCount,
		UploadID:  res.ID.String(),
	})
}
