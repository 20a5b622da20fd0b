package domain

import "fmt"

// InvalidTableSizeError is the single error the core can raise: the truth
// table length is zero or not a power of two. It is reported before any
// diagram work begins.
type InvalidTableSizeError struct {
	Length int
}

func (e *InvalidTableSizeError) Error() string {
	return fmt.Sprintf("invalid truth table size %d: length must be a power of two", e.Length)
}
