package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors or only nil values are given, nil is returned.
// If only one non nil error is given, that error is returned unchanged.
// Otherwise a multi error instance that contains all non nil errors is
// returned.
func Append(errs ...error) error {
	var res []error
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		// Flatten so that the result is always a single level list.
		if m, ok := e.(*multiError); ok {
			res = append(res, m.errs...)
		} else {
			res = append(res, e)
		}
	}

	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return &multiError{errs: res}
	}
}

// multiError is an error that clubs together more than one error. Use
// Append function to create an instance.
type multiError struct {
	errs []error
}

func (e *multiError) Error() string {
	points := make([]string, len(e.errs))
	for i, err := range e.errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(e.errs), strings.Join(points, "\n\t"))
}

// Unpack returns all the errors that this multi error clubs together.
func (e *multiError) Unpack() []error {
	return e.errs
}

// unpacker is implemented by errors that are a collection of errors.
type unpacker interface {
	Unpack() []error
}
