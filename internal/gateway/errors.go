package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
)

// Sentinel errors for the fatal API failure classes. The CLI layer
// matches on these with errors.Is to pick the user-facing message;
// the wrapped cause stays available for verbose logs.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAuthOrRateLimit = errors.New("authentication failed or rate limit exceeded")
	ErrServer          = errors.New("github server error")
	ErrNetwork         = errors.New("network error")
)

// mapAPIError classifies a go-github client error into one of the
// sentinel errors: 404 -> ErrUserNotFound, 401/403 (including rate
// limit responses) -> ErrAuthOrRateLimit, 5xx -> ErrServer, anything
// transport-level -> ErrNetwork. Every class is fatal; nothing is
// retried.
func mapAPIError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %v", ErrAuthOrRateLimit, err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %v", ErrAuthOrRateLimit, err)
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch code := respErr.Response.StatusCode; {
		case code == http.StatusNotFound:
			return fmt.Errorf("%w: %v", ErrUserNotFound, err)
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAuthOrRateLimit, err)
		case code >= http.StatusInternalServerError:
			return fmt.Errorf("%w: %v", ErrServer, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// isEndOfData reports whether err signals a malformed (non-list) page
// body. The events and repos feeds use that as an end-of-pagination
// marker, not a failure.
func isEndOfData(err error) bool {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return true
	}
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr)
}
