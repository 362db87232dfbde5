package diag

import (
	"errors"
	"fmt"
)

// InternalError signals a broken contract between the per-line
// tokenizer, the assembler and the parse-tree arena. It is not a parse
// diagnostic: correct input can never produce one, and callers must not
// retry locally. Op names the operation that detected the fault.
type InternalError struct {
	Code Code
	Op   string
	Err  error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: internal fault %s: %v", e.Op, e.Code.ID(), e.Err)
	}
	return fmt.Sprintf("%s: internal fault %s: %s", e.Op, e.Code.ID(), e.Code.Title())
}

func (e *InternalError) Unwrap() error { return e.Err }

// Internalf builds an InternalError with a formatted detail message.
func Internalf(code Code, op, format string, args ...any) *InternalError {
	return &InternalError{
		Code: code,
		Op:   op,
		Err:  fmt.Errorf(format, args...),
	}
}

// WrapInternal normalises any unexpected lower-level failure into the
// internal-fault channel. An error that already is an InternalError is
// returned unchanged.
func WrapInternal(op string, err error) *InternalError {
	if err == nil {
		return nil
	}
	var ie *InternalError
	if errors.As(err, &ie) {
		return ie
	}
	return &InternalError{Code: IceWrapped, Op: op, Err: err}
}

// IsInternal reports whether err is (or wraps) an internal fault.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}
