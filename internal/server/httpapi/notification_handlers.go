package httpapi

import "net/http"

// handleListNotifications returns the caller's notifications newest-first
// and marks them read.
func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := s.notifications.List(ctx, callerID(r))
	if err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleClearNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.notifications.Clear(ctx, callerID(r)); err != nil {
		s.writeServiceError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Notifications deleted successfully"})
}
