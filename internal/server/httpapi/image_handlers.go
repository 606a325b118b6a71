package httpapi

import "net/http"

type uploadURLResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type downloadURLResponse struct {
	URL string `json:"url"`
}

// handleUploadURL hands the caller a presigned PUT URL; the client uploads
// the image directly to the object store and references it by key.
func (s *Server) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key, url, err := s.images.UploadURL(ctx)
	if err != nil {
		s.logger.Error(ctx, "presign upload failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, uploadURLResponse{Key: key, URL: url})
}

func (s *Server) handleDownloadURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	url, err := s.images.DownloadURL(ctx, r.PathValue("key"))
	if err != nil {
		s.logger.Error(ctx, "presign download failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, downloadURLResponse{URL: url})
}
