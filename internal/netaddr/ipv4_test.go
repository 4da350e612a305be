package netaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPv4_FourPart(t *testing.T) {
	addr, err := ParseIPv4("192.168.178.255", 13, 0)

	require.NoError(t, err)
	assert.Equal(t, Address(0xC0A8B2FF), addr)
	assert.Equal(t, Address(3232281855), addr)
}

func TestParseIPv4_LastPartMayPassWindow(t *testing.T) {
	// The 13-char window limits where a part may start; the final part
	// "255" begins inside it and runs past it.
	addr, err := ParseIPv4("192.168.178.255", 13, 0)

	require.NoError(t, err)
	assert.Equal(t, "192.168.178.255", addr.String())
}

func TestParseIPv4_ClassfulForms(t *testing.T) {
	// a.b: last part fills the rightmost 24 bits.
	addr, err := ParseIPv4("128.1", 13, 0)
	require.NoError(t, err)
	assert.Equal(t, Address(128<<24+1), addr)

	// a.b.c: last part fills the rightmost 16 bits.
	addr, err = ParseIPv4("128.5.7", 13, 0)
	require.NoError(t, err)
	assert.Equal(t, Address(128<<24+5<<16+7), addr)

	// a: stored verbatim.
	addr, err = ParseIPv4("2130706433", 13, 0)
	require.NoError(t, err)
	assert.Equal(t, Address(0x7F000001), addr)
}

func TestParseIPv4_NumericBases(t *testing.T) {
	tests := []struct {
		name string
		text string
		base int
		want Address
	}{
		{"auto hex parts", "0xC0.0xA8.0x1.0x1", 0, 0xC0A80101},
		{"auto octal parts", "010.010.010.010", 0, 0x08080808},
		{"single hex part", "0x7F000001", 0, 0x7F000001},
		{"forced decimal", "10.10.10.10", 10, 0x0A0A0A0A},
		{"forced hex", "0C0.0A8.01.01", 16, 0xC0A80101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseIPv4(tt.text, 17, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestParseIPv4_ForcedHexPartsStartAtDigit(t *testing.T) {
	// With base 16 a part still begins only at an ASCII digit, so a
	// part like "FF" is never entered and scanning skips it.
	addr, err := ParseIPv4("1F.2A", 13, 16)

	require.NoError(t, err)
	assert.Equal(t, Address(0x1F<<24+0x2A), addr)
}

func TestParseIPv4_Invalid(t *testing.T) {
	_, err := ParseIPv4("", 13, 0)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ParseIPv4("abc", 13, 0)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = ParseIPv4("...", 13, 0)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestParseIPv4_TrailingGarbageIgnored(t *testing.T) {
	// Anything other than '.' after a parsed part ends the scan.
	addr, err := ParseIPv4("1.2.3.4 extra", 13, 0)
	require.NoError(t, err)
	assert.Equal(t, Address(0x01020304), addr)

	// A fifth part is never looked at.
	addr, err = ParseIPv4("1.2.3.4.5", 13, 0)
	require.NoError(t, err)
	assert.Equal(t, Address(0x01020304), addr)
}

func TestParseIPv4_LaxSeparators(t *testing.T) {
	// Non-digit characters before a part are skipped while hunting for
	// the next digit, so a doubled dot still yields two parts.
	addr, err := ParseIPv4("1..2", 13, 0)

	require.NoError(t, err)
	assert.Equal(t, Address(1<<24+2), addr)
}

func TestParseIPv4_OversizedPartTruncates(t *testing.T) {
	// Historic behavior: no magnitude check, the shifts truncate.
	addr, err := ParseIPv4("256.1.1.1", 13, 0)

	require.NoError(t, err)
	assert.Equal(t, Address(0x00010101), addr)
}

func TestParseIPv4_WindowLimitsPartStart(t *testing.T) {
	// With a 7-char window the part at offset 8 is out of reach.
	addr, err := ParseIPv4("1.2.3.4", 5, 0)

	require.NoError(t, err)
	assert.Equal(t, Address(1<<24+2<<16+3), addr)
}

func TestAddress_IP(t *testing.T) {
	addr := Address(0xC0A8B2FF)

	ip := addr.IP()
	require.NotNil(t, ip.To4())
	assert.Equal(t, "192.168.178.255", ip.String())
}
