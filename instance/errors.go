// SPDX-License-Identifier: MIT

package instance

import "errors"

var (
	// ErrBadConfig indicates inconsistent generator bounds.
	ErrBadConfig = errors.New("instance: invalid generator config")

	// ErrEmptyDocument indicates a YAML stream without an instance.
	ErrEmptyDocument = errors.New("instance: empty document")
)
