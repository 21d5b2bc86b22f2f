package forms

import "fmt"

// UnknownStageError reports a navigation target outside the wizard's stages.
type UnknownStageError struct {
	Stage Stage
}

func (e UnknownStageError) Error() string {
	return fmt.Sprintf("unknown wizard stage %d", int(e.Stage))
}

// RowBoundsError reports an index outside the fund charge list.
type RowBoundsError struct {
	Index int
	Len   int
}

func (e RowBoundsError) Error() string {
	return fmt.Sprintf("row index %d out of bounds (len %d)", e.Index, e.Len)
}
