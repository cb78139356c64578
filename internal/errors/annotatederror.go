// Package errors provides error wrapping with slog annotations and source locations.
//
// It re-exports the standard library helpers so that callers only need a single
// errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// New returns an error that formats as the given text. See [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target. See [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target. See [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err. See [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error. See [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// AnnotatedError is an error carrying slog annotations and the source location
// of the call site where it was created.
type AnnotatedError struct {
	msg         string
	err         error
	annotations []slog.Attr
	source      string
}

// callerSource resolves the file:line of the caller skip frames up the stack.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return fmt.Sprintf("%s:%d", file, line)
}

// NewSentinel creates an error meant to be declared at package level and matched
// with [Is]. Sentinels record no source location since their declaration site is
// not where the failure happened.
func NewSentinel(msg string) error {
	return &AnnotatedError{
		msg:         msg,
		err:         nil,
		annotations: nil,
		source:      "",
	}
}

// Wrap annotates err with a message and optional [slog.Attr] annotations that
// are logged when the error is passed to [SlogError].
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	return &AnnotatedError{
		msg:         msg,
		err:         err,
		annotations: annotations,
		source:      callerSource(2), //nolint:mnd // skip callerSource and Wrap.
	}
}

// DecoratePanic converts a recovered panic value into an error pointing at the
// recover site.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &AnnotatedError{
		msg:         fmt.Sprintf("panic: %v", recovered),
		err:         nil,
		annotations: nil,
		source:      callerSource(2), //nolint:mnd // skip callerSource and DecoratePanic.
	}
}

func (e *AnnotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap exposes the wrapped error for [errors.Is] and [errors.As].
func (e *AnnotatedError) Unwrap() error {
	return e.err
}

// SlogError renders the error into a single [slog.Attr] containing the message,
// the source location closest to the root cause, and all annotations collected
// from the error tree.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{Key: "error", Value: slog.StringValue("<nil>")}
	}
	var (
		annotations []slog.Attr
		source      string
	)
	collectAnnotations(err, &annotations, &source)
	return slog.Attr{Key: "error", Value: slog.GroupValue(
		slog.String("message", err.Error()),
		slog.String("source", source),
		slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)},
	)}
}

// collectAnnotations walks the error tree depth-first. The outermost recorded
// source wins so that logs point at the most recent wrap site.
func collectAnnotations(err error, annotations *[]slog.Attr, source *string) {
	if err == nil {
		return
	}
	if annotated, ok := err.(*AnnotatedError); ok { //nolint:errorlint // walking one level at a time.
		*annotations = append(*annotations, annotated.annotations...)
		if *source == "" && annotated.source != "" {
			*source = annotated.source
		}
		collectAnnotations(annotated.err, annotations, source)
		return
	}
	switch unwrappable := err.(type) { //nolint:errorlint // walking one level at a time.
	case interface{ Unwrap() error }:
		collectAnnotations(unwrappable.Unwrap(), annotations, source)
	case interface{ Unwrap() []error }:
		for _, joined := range unwrappable.Unwrap() {
			collectAnnotations(joined, annotations, source)
		}
	}
}
