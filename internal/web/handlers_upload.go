package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JonMunkholm/pharmacatalog/internal/logging"
	"github.com/JonMunkholm/pharmacatalog/internal/sheet"
	mw "github.com/JonMunkholm/pharmacatalog/internal/web/middleware"
)

// multipartOverhead is allowed on top of MaxFileSize for form boundaries
// and headers.
const multipartOverhead = 1 << 20

// handleUpload replaces the catalog with the products in the uploaded
// spreadsheet. The operator password is checked by middleware.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, r, errFileTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		s.respondError(w, r, fmt.Errorf("%w: %v", errNoFile, err), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, errNoFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		s.respondError(w, r, errFileTooLarge, http.StatusRequestEntityTooLarge)
		return
	}

	logger := logging.WithFields(r.Context(), "file", header.Filename, "size", header.Size)
	logger.Info("upload received")

	rows, err := sheet.Read(header.Filename, file)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, sheet.ErrUnsupportedType) {
			status = http.StatusUnsupportedMediaType
		}
		s.respondError(w, r, err, status)
		return
	}

	result, err := s.service.Upload(r.Context(), header.Filename, rows)
	if err != nil {
		s.respondError(w, r, err, uploadStatus(err))
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

type loginRequest struct {
	Password string `json:"password"`
}

// handleLogin checks the operator password without uploading anything, so
// the admin page can unlock the upload form. The secret may come as JSON,
// a form field or the X-Admin-Password header.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get(mw.PasswordHeader)
	if secret == "" {
		if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			var req loginRequest
			if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err == nil {
				secret = req.Password
			}
		} else {
			secret = r.PostFormValue("password")
		}
	}

	if err := s.auth.Check(secret); err != nil {
		status := http.StatusForbidden
		if errors.Is(err, mw.ErrMissingPassword) {
			status = http.StatusUnauthorized
		}
		s.respondError(w, r, err, status)
		return
	}

	status := s.service.Status(r.Context())
	writeJSON(w, r, http.StatusOK, map[string]any{
		"ok":           true,
		"primaryReady": status.PrimaryReady,
		"writeTarget":  status.WriteTarget.StorageLabel(),
	})
}
