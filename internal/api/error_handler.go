package api

import (
	"net/http"
	"strings"

	"github.com/vytor/chessdash/internal/errors"
	"github.com/vytor/chessdash/internal/logger"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleError centralizes error handling for HTTP responses
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else if appErr.Status >= 400 {
		log.Warn("client error: %v", appErr)
	} else {
		log.Debug("error: %v", appErr)
	}

	if wantsJSON(r) {
		writeJSON(w, r, appErr.Status, map[string]errorBody{
			"error": {Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	http.Error(w, appErr.Message, appErr.Status)
}

func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
