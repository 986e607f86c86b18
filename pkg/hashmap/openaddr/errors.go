package openaddr

import "github.com/pkg/errors"

var (
	ErrConcurrentModification = errors.New("openaddr: table modified during iteration")
	ErrNoSuchElement          = errors.New("openaddr: iterator has no more elements")
	ErrInvariant              = errors.New("openaddr: table invariant violated")
)
