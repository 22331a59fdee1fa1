package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedOutput marks data source output that could not be parsed.
	ErrMalformedOutput = errors.New("malformed output")
	// ErrUnknownSource is returned for an unsupported sampling backend.
	ErrUnknownSource = errors.New("unknown sampling source")
)

// SamplingError reports a failure to obtain one metric.
type SamplingError struct {
	Metric Metric
	Source string
	Err    error
}

func (e *SamplingError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("sample %s: %v", e.Metric, e.Err)
	}
	return fmt.Sprintf("sample %s via %s: %v", e.Metric, e.Source, e.Err)
}

func (e *SamplingError) Unwrap() error { return e.Err }

// NewSamplingError wraps err for metric m read from source.
func NewSamplingError(m Metric, source string, err error) error {
	return &SamplingError{Metric: m, Source: source, Err: err}
}
