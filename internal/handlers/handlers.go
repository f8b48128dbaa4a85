package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func SendJSON(w http.ResponseWriter, v any) (int, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	w.Header().Add("Content-Type", "application/json")
	return w.Write(payload)
}

func sendJSONOrLog(w http.ResponseWriter, logger *slog.Logger, v any) {
	_, err := SendJSON(w, v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error(
			"unable to send response",
			slog.Any("response", v),
			slog.Any("error", err),
		)
	}
}

// sendJSONStatus encodes v before committing status, so an encoding failure
// can still answer 500.
func sendJSONStatus(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error(
			"unable to encode response",
			slog.Any("response", v),
			slog.Any("error", err),
		)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		logger.Error("unable to send response", slog.Any("error", err))
	}
}

func sendError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload, merr := json.Marshal(wrapError(err))
	if merr != nil {
		logger.Error("unable to encode error", slog.Any("error", merr))
		return
	}
	if _, werr := w.Write(payload); werr != nil {
		logger.Error(
			"failed to send error message",
			slog.Any("sent error", err),
			slog.Any("error", werr),
		)
	}
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}
