package ring

import "errors"

// ErrNotInvertible is returned by Inverse when called on an element that is
// not a unit of R_p (spec §7).
var ErrNotInvertible = errors.New("ring: element is not invertible")
