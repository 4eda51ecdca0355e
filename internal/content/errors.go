package content

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// TextCodeFetchFailed tags content fetch failures.
const TextCodeFetchFailed = "CONTENT_FETCH_FAILED"

var (
	// ErrUnknownQuery is returned by backends that cannot serve a query name.
	ErrUnknownQuery = errors.New("content: unknown query")
	// ErrDocumentInvalid reports a document missing its _type or _id.
	ErrDocumentInvalid = errors.New("content: document requires _type")
)

// FetchError reports a failed content query. It unwraps to a go-errors
// error categorised as external.
type FetchError struct {
	Query string
	Err   error
	cause error
}

func newFetchError(query string, err error) *FetchError {
	return &FetchError{
		Query: query,
		Err:   err,
		cause: goerrors.Wrap(err, goerrors.CategoryExternal, "Failed to fetch data").
			WithTextCode(TextCodeFetchFailed),
	}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("content: failed to fetch data for %s: %v", e.Query, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.cause
}

// NotFoundError is returned when a stored document cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
