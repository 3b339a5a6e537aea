package util

import (
	"fmt"
)

// Fatal is raised by NoError and Try for failures that leave the caller no
// sensible way to continue, e.g. unreadable test data.
type Fatal struct {
	Msg string
	Err error
}

func (f Fatal) Error() string {
	if f.Msg == "" {
		return fmt.Sprintf("fatal error: %v", f.Err)
	}
	return fmt.Sprintf("fatal error: %s - %v", f.Msg, f.Err)
}

func (f Fatal) Unwrap() error {
	return f.Err
}

func NoError(err error, msg string) {
	if err != nil {
		panic(Fatal{Msg: msg, Err: err})
	}
}

func Try[T any](input T, err error) T {
	NoError(err, "")
	return input
}

func Assert(cond bool, msgAndArgs ...interface{}) {
	if !cond {
		msg := fmt.Sprint(msgAndArgs...)
		if msg == "" {
			msg = "assertion failed"
		}
		panic(msg)
	}
}

type msgWithArgs struct {
	msg  string
	args []any
}

func (m msgWithArgs) String() string {
	if len(m.args) == 0 {
		return m.msg
	} else {
		return fmt.Sprintf(m.msg, m.args...)
	}
}

// Lazily formatted message for Assert, only rendered when the assertion fails.
func Msg(msg string, args ...any) fmt.Stringer {
	return msgWithArgs{msg, args}
}
