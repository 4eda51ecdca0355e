package http

import (
	"errors"
	"mime"
	"net/http"

	"github.com/goliatone/socialsync/internal/commands"
	"github.com/goliatone/socialsync/internal/contact"
)

const maxContactBody = 64 << 10

func (site *Site) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	sub, err := decodeSubmission(r)
	if err != nil {
		site.logger.Debug("http.contact.decode_failed", "error", err)
		writeError(w, http.StatusBadRequest, contact.MissingFieldsMessage)
		return
	}

	result, err := site.contact.Submit(r.Context(), sub)
	if err != nil {
		if commands.IsValidation(err) {
			writeError(w, http.StatusBadRequest, contact.MissingFieldsMessage)
			return
		}
		site.logger.Error("http.contact.failed", "error", err)
		writeError(w, http.StatusInternalServerError, contact.FailureMessage)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: result.Message})
}

// decodeSubmission reads a JSON body, or a form body when the request says so.
func decodeSubmission(r *http.Request) (contact.Submission, error) {
	var sub contact.Submission
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxContactBody); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return sub, err
		}
		sub.Name = r.PostFormValue("name")
		sub.Email = r.PostFormValue("email")
		sub.Subject = r.PostFormValue("subject")
		sub.Message = r.PostFormValue("message")
		return sub, nil
	default:
		err := decodeJSON(r, &sub)
		return sub, err
	}
}
