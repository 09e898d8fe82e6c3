package contents

import "errors"

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidPath   = errors.New("invalid content path")
)
