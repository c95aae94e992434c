package media

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/dbmongo"
)

// HTTPServer streams stored media files out of GridFS.
type HTTPServer struct {
	storage *dbmongo.MediaStorage
	router  *mux.Router
	logger  *zap.Logger
}

func NewHTTPServer(storage *dbmongo.MediaStorage, logger *zap.Logger) *HTTPServer {
	s := &HTTPServer{storage: storage, logger: logger}

	router := mux.NewRouter()
	router.HandleFunc("/media/{fileId}", s.serveFile).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")
	s.router = router

	return s
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["fileId"]

	reader, file, err := s.storage.Download(r.Context(), fileID)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	contentType := file.MimeType
	if contentType == "" {
		contentType = contentTypeFor(file.Filename)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", file.Size))

	if _, err := io.Copy(w, reader); err != nil {
		s.logger.Error("failed to stream file",
			zap.String("file_id", fileID), zap.Error(err))
	}
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
