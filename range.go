package clap

import "fmt"

// ValueRange is an inclusive interval constraining how many raw tokens an
// argument may bind. An unbounded maximum means the argument collects values
// until the next option or the end of the argument vector.
type ValueRange struct {
	min       int
	max       int
	unbounded bool
}

// Canonical ranges. A zero range marks a flag that takes no value at all.
var (
	RangeZero     = ValueRange{min: 0, max: 0}
	RangeOne      = ValueRange{min: 1, max: 1}
	RangeOptional = ValueRange{min: 0, max: 1}
	RangeAny      = ValueRange{min: 0, unbounded: true}
)

// NewValueRange builds a bounded range. It panics when min exceeds max since
// that is always a construction bug, not an input condition.
func NewValueRange(min, max int) ValueRange {
	if min < 0 || max < 0 {
		panic(fmt.Sprintf("clap.NewValueRange: bounds must be non-negative, got [%d, %d]", min, max))
	}
	if min > max {
		panic(fmt.Sprintf("clap.NewValueRange: min %d exceeds max %d", min, max))
	}
	return ValueRange{min: min, max: max}
}

// AtLeast builds a range with no upper bound.
func AtLeast(min int) ValueRange {
	if min < 0 {
		panic(fmt.Sprintf("clap.AtLeast: bound must be non-negative, got %d", min))
	}
	return ValueRange{min: min, unbounded: true}
}

// Includes reports whether n values satisfy the range.
func (r ValueRange) Includes(n int) bool {
	if n < r.min {
		return false
	}
	return r.unbounded || n <= r.max
}

// Min returns the lower bound.
func (r ValueRange) Min() int { return r.min }

// Max returns the upper bound; ok is false when the range is unbounded.
func (r ValueRange) Max() (bound int, ok bool) { return r.max, !r.unbounded }

// IsOne reports an exactly-one-value contract.
func (r ValueRange) IsOne() bool { return !r.unbounded && r.min == 1 && r.max == 1 }

// IsOptional reports a zero-or-one contract.
func (r ValueRange) IsOptional() bool { return !r.unbounded && r.min == 0 && r.max == 1 }

// IsMultiple reports whether more than one value may bind.
func (r ValueRange) IsMultiple() bool { return r.unbounded || r.max > 1 }

// IsRequired reports whether at least one value must bind.
func (r ValueRange) IsRequired() bool { return r.min > 0 }

// IsUnbounded reports whether the range has no upper limit.
func (r ValueRange) IsUnbounded() bool { return r.unbounded }

func (r ValueRange) String() string {
	if r.unbounded {
		return fmt.Sprintf("%d..", r.min)
	}
	return fmt.Sprintf("%d..%d", r.min, r.max)
}
