package algebra

import "errors"

// ErrDomain is returned when the symbolic engine reports an undefined
// operation, such as division by a zero value.
var ErrDomain = errors.New("domain error")

// ErrUnbalancedGrouping is returned when the operator sequence of an
// expression carries mismatched grouping marks, or a closing mark appears
// before its opening mark.
var ErrUnbalancedGrouping = errors.New("unbalanced grouping marks")

// ErrInvariant is returned when the parallel-sequence invariant between
// terms and operators is violated. It indicates a caller built an
// Expression incorrectly; it is never recovered from silently.
var ErrInvariant = errors.New("expression invariant violated")
