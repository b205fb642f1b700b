package gsmarena

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is returned for urls that do not end in `/<slug>-<digits>.php`.
	ErrInvalidIdentifier = errors.New("invalid device identifier")
	// ErrInvalidUrl is returned for brand urls that are not absolute urls on the upstream host.
	ErrInvalidUrl = errors.New("invalid url")
)

// FetchError is a failed upstream fetch: either a transport error (Err is set)
// or a response with a status other than 200 (Status is set).
type FetchError struct {
	Url    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("fetch %s: HTTP Error %d", e.Url, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
