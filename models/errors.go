package models

import "errors"

var (
	// ErrEmptyAddress rejects a search whose address is empty or whitespace.
	ErrEmptyAddress = errors.New("address is required")

	// ErrAddressMissing reports a history append whose address id does not
	// reference an existing address row.
	ErrAddressMissing = errors.New("address does not exist")
)
