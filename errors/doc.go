/*
Package errors implements custom error interfaces for msig.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary.

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New and Errxxx.Newf.

Validation code should describe the failing attribute using Field or
AppendField so that a caller (ie. a command line form) can point at the
exact input that must be corrected:

	var errs error
	errs = errors.AppendField(errs, "FromAddress", validateAddress(m.FromAddress))
	errs = errors.AppendField(errs, "Amount", m.Amount.Validate())
	return errs

There is also support for stacktraces. Please ensure you create the custom error using
ErrXyz.New("...") or errors.Wrap(err, "...") at the point of creation to ensure we attach
a stacktrace. If you wrap multiple times, we only record the first wrap with the stacktrace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context for the error
	%s is just the error message
	%+v is the full stack trace
*/
package errors
