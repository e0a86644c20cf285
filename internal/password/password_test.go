package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundtrip(t *testing.T) {
	encoded, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, Verify("correct horse battery staple", encoded))
	assert.False(t, Verify("correct horse battery stapl", encoded))
	assert.False(t, Verify("", encoded))
}

func TestHashFormat(t *testing.T) {
	encoded, err := Hash("secret")
	require.NoError(t, err)

	parts := strings.Split(encoded, ".")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], keyBytes*2)
	assert.Len(t, parts[1], saltBytes*2)
}

func TestHashUsesFreshSalt(t *testing.T) {
	first, err := Hash("secret")
	require.NoError(t, err)
	second, err := Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("secret", first))
	assert.True(t, Verify("secret", second))
}

func TestVerifyMalformedFailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"no delimiter", "deadbeef"},
		{"too many parts", "aa.bb.cc"},
		{"non-hex key", "zz.00112233445566778899aabbccddeeff"},
		{"short key", "deadbeef.00112233445566778899aabbccddeeff"},
		{"short salt", strings.Repeat("ab", 64) + ".deadbeef"},
		{"non-hex salt", strings.Repeat("ab", 64) + ".nothex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Verify("secret", tt.encoded))
		})
	}
}
