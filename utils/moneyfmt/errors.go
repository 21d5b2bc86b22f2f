package moneyfmt

import "fmt"

// ParseError reports input that holds no usable numeric content.
type ParseError struct {
	Input  string
	Reason string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as amount: %s", e.Input, e.Reason)
}
