package filterquery

import "fmt"

// BackendError is the single error category returned by the executors. It
// wraps whatever the driver reported without interpreting it, so errors.Is
// and errors.As still reach the driver error.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("filterquery: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func backendError(op string, q *Query, err error) error {
	return &BackendError{Op: op + " " + q.table, Err: err}
}
