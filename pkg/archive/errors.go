package archive

import (
	"fmt"
)

// HTTPStatusError reports a non-2xx response to a transfer request.
type HTTPStatusError struct {
	StatusCode int
}

func ErrUnexpectedHTTPStatus(statusCode int) error {
	return HTTPStatusError{StatusCode: statusCode}
}

var _ error = HTTPStatusError{}

func (c HTTPStatusError) Error() string {
	return fmt.Sprintf("Status code %d", c.StatusCode)
}
