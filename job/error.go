package job

import "fmt"

type ErrOutputExtension struct {
	Path string
}

func (e ErrOutputExtension) Error() string {
	return fmt.Sprintf("the output path '%s' does not end with the required '%s' extension", e.Path, RequiredOutputExtension)
}

type ErrAborted struct {
	Err error
}

func (e ErrAborted) Error() string {
	return fmt.Sprintf("the conversion was aborted: %v", e.Err)
}

func (e ErrAborted) Unwrap() error {
	return e.Err
}
