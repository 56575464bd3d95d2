package places

import "fmt"

// SearchError reports a failed places lookup: a non-2xx reply (StatusCode, Body) or a transport failure (Err).
type SearchError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("places: search failed: %v", e.Err)
	}

	return fmt.Sprintf("places: unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}
