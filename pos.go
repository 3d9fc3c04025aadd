package blk

import "fmt"

// Pos is a position in a BLK source, with Off being the byte offset into
// the input.
type Pos struct {
	Name string
	Line int
	Col  int
	Off  int
}

func (p Pos) String() string {
	if p.Name == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Col)
}

// Err returns a *SyntaxError at the position with the given message.
func (p Pos) Err(msg string) error {
	return &SyntaxError{
		Pos: p,
		Msg: msg,
	}
}

// SyntaxError is returned when the input does not match the BLK grammar.
// Parsing stops at the first such error, there is no partial result.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s - syntax error: %s", e.Pos, e.Msg)
}
