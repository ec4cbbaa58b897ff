package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const contentTypeJSON = "application/json; charset=utf-8"

// writeJSON writes v as a compact json object with status 200.
func writeJSON(w http.ResponseWriter, log *zap.Logger, v any) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		log.Error("failed to encode response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	// Encode terminates the value with a newline
	body := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}
