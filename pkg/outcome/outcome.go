package outcome

import "errors"

// Status classifies how an upstream-facing operation ended.
type Status string

const (
	StatusOK      Status = "ok"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// Outcome is the typed result of a best-effort operation. Callers get
// the data that was accumulated regardless of status and decide at the
// call site whether partial data is acceptable; the causes stay
// attached instead of being swallowed where the failure happened.
type Outcome struct {
	Status Status
	Causes []error
}

func OK() Outcome {
	return Outcome{Status: StatusOK}
}

// Partial marks an operation that lost some of its work to the given
// causes but still produced usable data.
func Partial(causes ...error) Outcome {
	return Outcome{Status: StatusPartial, Causes: causes}
}

// Failed marks an operation that produced no usable data.
func Failed(causes ...error) Outcome {
	return Outcome{Status: StatusFailed, Causes: causes}
}

func (o Outcome) IsOK() bool {
	return o.Status == StatusOK
}

// Err joins the causes into a single error, or nil when the operation
// fully succeeded.
func (o Outcome) Err() error {
	if len(o.Causes) == 0 {
		return nil
	}
	return errors.Join(o.Causes...)
}

// Merge combines two outcomes: any failure degrades the pair to
// partial (both sides may still carry data), two failures stay failed.
func Merge(a, b Outcome) Outcome {
	causes := append(append([]error{}, a.Causes...), b.Causes...)

	if a.Status == StatusFailed && b.Status == StatusFailed {
		return Outcome{Status: StatusFailed, Causes: causes}
	}
	if a.IsOK() && b.IsOK() {
		return Outcome{Status: StatusOK}
	}
	return Outcome{Status: StatusPartial, Causes: causes}
}
