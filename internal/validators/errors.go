package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPath       = errors.New("path is empty")
	ErrPathNotExist    = errors.New("does not exist")
	ErrPathNotReadable = errors.New("can't be read")
	ErrPathNotWritable = errors.New("is not writable")
	ErrPathKind        = errors.New("has the wrong kind")
)
