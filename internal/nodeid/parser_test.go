// internal/nodeid/parser_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectErr   bool
		expectedKey Key
	}{
		{
			name:        "simple key",
			raw:         "3v1",
			expectedKey: New(3, 1),
		},
		{
			name:        "zero index",
			raw:         "0v9",
			expectedKey: New(0, 9),
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - zero generation",
			raw:       "3v0",
			expectErr: true,
		},
		{
			name:      "error - missing generation",
			raw:       "3v",
			expectErr: true,
		},
		{
			name:      "error - negative index",
			raw:       "-1v1",
			expectErr: true,
		},
		{
			name:      "error - index overflow",
			raw:       "4294967296v1",
			expectErr: true,
		},
		{
			name:      "error - null literal",
			raw:       "null",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expectedKey.Equal(key), "parsed key %s does not match expected %s", key, tc.expectedKey)
		})
	}
}
