// SPDX-License-Identifier: MIT

package exact

import "errors"

// ErrBadOptions indicates negative Workers or TimeLimit.
var ErrBadOptions = errors.New("exact: invalid options")
