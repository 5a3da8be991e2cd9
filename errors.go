package vec

import "github.com/pkg/errors"

// ErrAllocLimit reports that a requested capacity cannot be represented as
// a single slab allocation on this platform. The triggering operation
// leaves the Vector unchanged.
var ErrAllocLimit = errors.New("vec: allocation size limit exceeded")
