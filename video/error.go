package video

import "fmt"

type ErrOpenInput struct {
	Path string
	Err  error
}

func (e ErrOpenInput) Error() string {
	return fmt.Sprintf("unable to open the input video '%s': %v", e.Path, e.Err)
}

func (e ErrOpenInput) Unwrap() error {
	return e.Err
}

type ErrOpenOutput struct {
	Path string
	Err  error
}

func (e ErrOpenOutput) Error() string {
	return fmt.Sprintf("unable to create the output video '%s': %v", e.Path, e.Err)
}

func (e ErrOpenOutput) Unwrap() error {
	return e.Err
}

type ErrDimensionsMismatch struct {
	ExpectedWidth, ExpectedHeight int
	GotWidth, GotHeight           int
}

func (e ErrDimensionsMismatch) Error() string {
	return fmt.Sprintf(
		"frame dimensions %dx%d do not match the stream descriptor %dx%d",
		e.GotWidth, e.GotHeight, e.ExpectedWidth, e.ExpectedHeight,
	)
}
