package rep

import "fmt"

// ParseError reports a malformed rep-string or infix expression, with the
// byte offset into the input where parsing failed.
type ParseError struct {
	Pos     int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("rep: position %d: %s", e.Pos, e.Message)
}
