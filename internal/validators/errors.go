package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("organization name is required")
	ErrNameTooLong        = errors.New("organization name is too long")
	ErrEmptyOldName       = errors.New("previous organization name is required")
	ErrDescriptionTooLong = errors.New("organization description is too long")
	ErrEmptyListEntry     = errors.New("list entries cannot be empty")
	ErrDuplicateListEntry = errors.New("list entries must be unique")
)
