// Package netaddr parses the text forms of IPv4 and MAC addresses
// accepted by the wol command.
//
// The IPv4 parser implements the classful BSD inet_network notation
// rather than the strict four-octet form, so two- and three-part
// addresses like "128.1" remain valid shorthand.
package netaddr

import (
	"errors"
	"fmt"
	"net"
)

// Address is an IPv4 address held as a host-order 32-bit value.
type Address uint32

// ErrInvalidAddress is returned when no address part could be parsed.
var ErrInvalidAddress = errors.New("netaddr: invalid IPv4 address")

// ParseIPv4 converts text in IPv4 dotted notation into an Address.
// At most maxLen characters are considered when looking for the start
// of a part; the final part may extend past that window.
//
// Up to four parts separated by '.' are recognized and combined
// classfully: four parts fill the four address bytes left to right,
// with three parts the last part supplies the rightmost 16 bits, with
// two parts the rightmost 24 bits, and a single part is stored
// verbatim. Each part is an integer literal in the given base; base 0
// auto-detects "0x" hex, leading-0 octal, or decimal.
//
// Scanning is deliberately lax for compatibility with the historic
// notation: a part begins only at a digit, anything other than '.'
// after a parsed part ends the scan (trailing garbage is ignored), and
// oversized parts are truncated by the 32-bit shifts rather than
// rejected.
func ParseIPv4(text string, maxLen, base int) (Address, error) {
	var parts [4]uint32
	count := 0

	if maxLen > len(text) {
		maxLen = len(text)
	}

	for i := 0; i < maxLen && count < 4; i++ {
		c := text[i]
		if c < '0' || c > '9' {
			continue
		}
		v, width := scanUint(text[i:], base)
		parts[count] = v
		count++
		i += width
		if i >= len(text) || text[i] != '.' {
			break
		}
		// the loop increment steps over the dot
	}

	switch count {
	case 4:
		return Address(parts[0]<<24 + parts[1]<<16 + parts[2]<<8 + parts[3]), nil
	case 3:
		return Address(parts[0]<<24 + parts[1]<<16 + parts[2]), nil
	case 2:
		return Address(parts[0]<<24 + parts[1]), nil
	case 1:
		return Address(parts[0]), nil
	default:
		return 0, ErrInvalidAddress
	}
}

// scanUint reads an unsigned integer literal from the start of s and
// reports its value and the number of characters consumed. Base 0
// auto-detects the C literal prefixes; the value wraps at 32 bits the
// way assignment to a 32-bit field does.
func scanUint(s string, base int) (uint32, int) {
	i := 0

	if base == 0 {
		switch {
		case hasHexPrefix(s):
			base = 16
		case len(s) > 0 && s[0] == '0':
			base = 8
		default:
			base = 10
		}
	}
	if base == 16 && hasHexPrefix(s) {
		i = 2
	}

	var v uint64
	for ; i < len(s); i++ {
		d, ok := digitVal(s[i], base)
		if !ok {
			break
		}
		v = v*uint64(base) + uint64(d)
	}

	// "0x" with no hex digit after it is the literal "0".
	if i == 2 && hasHexPrefix(s) {
		return 0, 1
	}

	return uint32(v), i
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func digitVal(c byte, base int) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

// IP returns the address as a net.IP.
func (a Address) IP() net.IP {
	return net.IPv4(byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}

// String renders the address in four-part dotted decimal notation.
func (a Address) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(a>>24), byte(a>>16), byte(a>>8), byte(a))
}
