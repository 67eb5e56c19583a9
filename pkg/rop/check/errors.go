package check

import (
	"errors"
	"strings"

	"github.com/ib-77/ropcheck/pkg/rop"
	"github.com/ib-77/ropcheck/pkg/rop/nes"
)

// ErrCheckFailed matches every check failure with errors.Is.
var ErrCheckFailed = errors.New("check failed")

// Failure is the single-reason payload of a failed Check.
type Failure struct {
	Reason string
}

func NewFailure(reason string) *Failure {
	return &Failure{Reason: reason}
}

func (f *Failure) Error() string {
	return f.Reason
}

func (f *Failure) Is(target error) bool {
	return target == ErrCheckFailed
}

// Failures is the accumulated payload of a failed Lifted check. It always
// holds at least one error, in the order the checks were declared.
type Failures struct {
	errs nes.NonEmpty[error]
}

func NewFailures(first error, rest ...error) *Failures {
	return &Failures{errs: nes.Of(first, rest...)}
}

// Errors returns the accumulated errors.
func (f *Failures) Errors() nes.NonEmpty[error] {
	return f.errs
}

// Reasons returns the message of every accumulated error, in order.
func (f *Failures) Reasons() nes.NonEmpty[string] {
	return nes.Map(f.errs, error.Error)
}

func (f *Failures) Error() string {
	return strings.Join(f.Reasons().Slice(), "; ")
}

func (f *Failures) Unwrap() []error {
	return f.errs.Slice()
}

func (f *Failures) Is(target error) bool {
	return target == ErrCheckFailed
}

// concat is the error-combination rule: left failures first, then right.
func concat(left, right *Failures) *Failures {
	return &Failures{errs: nes.Concat(left.errs, right.errs)}
}

// asFailures views any failure error as a sequence. Errors that are not
// already a *Failures become a one-element sequence.
func asFailures(err error) *Failures {
	if fs, ok := err.(*Failures); ok && fs.errs.IsValid() {
		return fs
	}
	return NewFailures(err)
}

// Reasons renders a composer failure to its ordered reason strings. A
// joined error yields one reason per joined error. It returns nil for a nil
// error.
func Reasons(err error) []string {
	if err == nil {
		return nil
	}

	var fs *Failures
	if errors.As(err, &fs) && fs.errs.IsValid() {
		reasons := make([]string, 0, fs.errs.Len())
		for _, e := range fs.errs.All() {
			reasons = append(reasons, e.Error())
		}
		return reasons
	}

	errs := rop.GetErrors(err)
	reasons := make([]string, len(errs))
	for i, e := range errs {
		reasons[i] = e.Error()
	}
	return reasons
}
