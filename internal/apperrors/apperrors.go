package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat means the uploaded document type cannot be
	// parsed and the user must resubmit a supported format.
	ErrUnsupportedFormat = errors.New("unsupported file format, please upload a PDF or DOCX file")

	// ErrExtractionFailed means a supported document could not be read.
	ErrExtractionFailed = errors.New("failed to extract text from document")

	// ErrMalformedModelOutput means the model reply held no parseable JSON.
	ErrMalformedModelOutput = errors.New("malformed model output")

	// ErrNotFound is a non-fatal absence signal; callers degrade to
	// unpersonalized behavior instead of failing.
	ErrNotFound = errors.New("record not found")

	// ErrStorage covers upload/persist failures in the blob store.
	ErrStorage = errors.New("storage error")
)

// RemoteServiceError reports a failed call to the model endpoint. StatusCode
// is zero for transport-level failures (timeout, connection refused).
type RemoteServiceError struct {
	StatusCode int
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("remote service error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote service error: %v", e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// IsRemoteFailure reports whether err came from the model endpoint, either
// as a failed call or as unparseable output. The scorer routes both into
// its deterministic fallback.
func IsRemoteFailure(err error) bool {
	var remote *RemoteServiceError
	return errors.As(err, &remote) || errors.Is(err, ErrMalformedModelOutput)
}
