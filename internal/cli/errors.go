package cli

import "github.com/alexanderramin/timetrack/internal/message"

// userError carries the wording shown to the user while keeping the
// underlying error matchable with errors.Is/As.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func describe(err error) error {
	if err == nil {
		return nil
	}
	return &userError{msg: message.DescribeError(err), err: err}
}
