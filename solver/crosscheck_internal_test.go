// SPDX-License-Identifier: MIT

package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportCheck(t *testing.T) {
	tests := []struct {
		name    string
		rep     Report
		agree   bool
		bounded bool
	}{
		{"equal", Report{RouteThenTrade: 8, Interleaved: 8, Heuristic: 8}, true, true},
		{"within tolerance", Report{RouteThenTrade: 8, Interleaved: 8.005, Heuristic: 7}, true, true},
		{"exact disagree", Report{RouteThenTrade: 8, Interleaved: 9, Heuristic: 7}, false, true},
		{"heuristic above", Report{RouteThenTrade: 8, Interleaved: 8, Heuristic: 8.5}, true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rep := tc.rep
			err := rep.check(DefaultTolerance)
			assert.Equal(t, tc.agree, rep.Agree)
			assert.Equal(t, tc.bounded, rep.Bounded)
			if tc.agree && tc.bounded {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrMismatch)
			}
		})
	}
}
