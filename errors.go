package budget

import "errors"

var (
	ErrNilCategory        = errors.New("nil category")
	ErrDuplicateCategory  = errors.New("category already exists")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrNoAllocationRules  = errors.New("no allocation rules")
	ErrAllocationExceeded = errors.New("total allocation percentages exceed 100%")
	ErrMalformedStatement = errors.New("malformed statement")
)
