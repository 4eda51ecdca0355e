package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type errorResponse struct {
	Error string `json:"error"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// redirectTarget returns the local path of the referring page, or "/" when
// the referrer is missing or points at another host.
func redirectTarget(r *http.Request) string {
	raw := strings.TrimSpace(r.Referer())
	if raw == "" {
		return "/"
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "/"
	}
	if ref.Host != "" && !strings.EqualFold(ref.Host, r.Host) {
		return "/"
	}
	target := ref.EscapedPath()
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return target
}
