package contact

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeValidationFailed = "CONTACT_VALIDATION_FAILED"
	TextCodePersistFailed    = "CONTACT_PERSIST_FAILED"
	TextCodeNotifyFailed     = "CONTACT_NOTIFY_FAILED"

	// SuccessMessage is returned to callers when the submission was stored.
	SuccessMessage = "Message sent successfully"
	// MissingFieldsMessage is the generic validation message.
	MissingFieldsMessage = "Missing required fields"
	// FailureMessage is the generic submission failure message.
	FailureMessage = "Failed to send message"
)

var (
	ErrStoreRequired     = errors.New("contact: store is required")
	ErrMailNotConfigured = errors.New("contact: mail transport is not configured")
)

func persistError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "failed to persist contact message").
		WithTextCode(TextCodePersistFailed)
}

func notifyError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "failed to send contact notification").
		WithTextCode(TextCodeNotifyFailed)
}
