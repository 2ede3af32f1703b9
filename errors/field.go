package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Field wraps err with the name of the attribute it was produced for. Nil is
// returned for a nil err, so that the result of a validation can be passed
// in directly.
//
// The name is a dotted path. Nested attributes are separated with a dot and
// list elements are referenced by their index, for example Msgs.0.Amount or
// Inputs.1.Coins. Use Path to build one.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

// AppendField clubs together errorsOrNil with fieldErrOrNil described as an
// error of given attribute.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

// Path joins given elements into an attribute path. Integers are list
// indexes, so Path("Msgs", 2, "Amount") returns "Msgs.2.Amount".
func Path(elems ...interface{}) string {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		switch v := e.(type) {
		case string:
			if v != "" {
				parts = append(parts, v)
			}
		case int:
			parts = append(parts, strconv.Itoa(v))
		case uint64:
			parts = append(parts, strconv.FormatUint(v, 10))
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, ".")
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

// Error prints the full path of the innermost attribute. A validator of a
// list element usually reports the element attribute only and the caller
// prefixes it, so nested field errors without a description collapse into
// a single path.
func (err *fieldError) Error() string {
	field, parent := err.field, err.parent
	desc := err.desc
	for desc == "" {
		inner, ok := parent.(*fieldError)
		if !ok {
			break
		}
		field = Path(field, inner.field)
		parent, desc = inner.parent, inner.desc
	}
	if desc == "" {
		return fmt.Sprintf("field %q: %s", field, parent)
	}
	return fmt.Sprintf("field %q: %s: %s", field, desc, parent)
}

func (err *fieldError) Cause() error {
	return err.parent
}

func (err *fieldError) Field() string {
	return err.field
}

// FieldErrors returns all errors created for given attribute path.
//
// Paths of nested field errors are resolved, so an error created for "0"
// by a coin list validator and wrapped as "Inputs.1.Coins" by the message
// validator is found when looking for "Inputs.1.Coins.0".
func FieldErrors(err error, fieldName string) []error {
	if isNilErr(err) {
		return nil
	}

	var res []error
	for err != nil {
		if f, ok := err.(fielder); ok {
			switch name := f.Field(); {
			case name == fieldName:
				return append(res, err)
			case strings.HasPrefix(fieldName, name+"."):
				return append(res, FieldErrors(unwrap(err), fieldName[len(name)+1:])...)
			}
		}

		// A collection is searched element by element. Its Cause
		// would not reveal anything else.
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				res = append(res, FieldErrors(e, fieldName)...)
			}
			return res
		}

		err = unwrap(err)
	}
	return res
}

// unwrap returns the error wrapped by err, or nil if err does not wrap
// anything.
func unwrap(err error) error {
	if c, ok := err.(causer); ok {
		return c.Cause()
	}
	return nil
}

type fielder interface {
	Field() string
}
