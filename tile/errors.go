package tile

import (
	"fmt"
)

// MalformedParamsError reports a parameter spec with the wrong field count
// (a valid spec has exactly three comma-delimited fields).
type MalformedParamsError struct {
	Spec   string
	Fields int
}

func (e *MalformedParamsError) Error() string {
	return fmt.Sprintf("malformed params %q: want 3 comma-delimited fields, got %d", e.Spec, e.Fields)
}

// NonNumericParamError reports a spec field that did not parse as a number.
type NonNumericParamError struct {
	Spec  string
	Field string // "mean", "stdDev" or "opacity"
	Value string
}

func (e *NonNumericParamError) Error() string {
	return fmt.Sprintf("params %q: %s %q is not numeric", e.Spec, e.Field, e.Value)
}

// OpacityRangeError reports an opacity outside the closed range [0,100].
type OpacityRangeError struct {
	Opacity float64
}

func (e *OpacityRangeError) Error() string {
	return fmt.Sprintf("opacity %v out of range [0,100]", e.Opacity)
}
