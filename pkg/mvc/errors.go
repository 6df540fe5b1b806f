package mvc

import "errors"

// nilArgumentError signals a missing required reference (empty name, nil
// observer, nil proxy, ...).
type nilArgumentError struct{ arg string }

func (e nilArgumentError) Error() string { return "nil argument: " + e.arg }

// ErrNilArgument returns an error for the missing argument arg.
func ErrNilArgument(arg string) error { return nilArgumentError{arg: arg} }

// IsNilArgument reports whether err indicates a missing required argument.
func IsNilArgument(err error) bool {
	var e nilArgumentError
	return errors.As(err, &e)
}

// instantiationError wraps the failure of a CommandFactory to produce a command.
type instantiationError struct{ cause error }

func (e instantiationError) Error() string { return "instantiate command: " + e.cause.Error() }

func (e instantiationError) Unwrap() error { return e.cause }

// ErrInstantiation wraps cause as an instantiation failure.
func ErrInstantiation(cause error) error {
	if cause == nil {
		cause = errNilCommand
	}
	return instantiationError{cause: cause}
}

// IsInstantiation reports whether err came from a failed command instantiation.
func IsInstantiation(err error) bool {
	var e instantiationError
	return errors.As(err, &e)
}

// notWiredError signals a component used before the composition root
// connected it (a Controller without a View, a Notifier without a Facade).
type notWiredError struct{ what string }

func (e notWiredError) Error() string { return "not wired: " + e.what }

// ErrNotWired constructs a notWiredError.
func ErrNotWired(what string) error { return notWiredError{what: what} }

// IsNotWired reports whether err indicates a missing wiring step.
func IsNotWired(err error) bool {
	var e notWiredError
	return errors.As(err, &e)
}

var errNilCommand = errors.New("constructor returned nil command")
