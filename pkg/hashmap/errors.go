package hashmap

import "github.com/pkg/errors"

var (
	ErrInvalidCapacity = errors.New("hashmap: invalid capacity")
)
