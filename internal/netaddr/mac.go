package netaddr

import (
	"errors"
	"fmt"
)

// HardwareAddr is a 48-bit MAC address held in the low bits of a uint64.
type HardwareAddr uint64

// ErrInvalidMAC is returned when the scan window did not contain twelve
// hex digits.
var ErrInvalidMAC = errors.New("netaddr: invalid MAC address")

const (
	// macScanWindow caps how many characters of input are examined.
	// Seventeen characters fit the common colon form aa:bb:cc:dd:ee:ff.
	macScanWindow = 17

	macNibbles = 12
)

// ParseMAC converts a hex MAC address string into a HardwareAddr.
// Hex digits are accumulated case-insensitively and any other character
// (':', '-', '.') is skipped, so the usual delimiter styles and the
// bare twelve-digit form are all accepted. Scanning looks at no more
// than seventeen characters and stops as soon as twelve digits have
// been found; anything short of twelve inside that window is an error.
func ParseMAC(text string) (HardwareAddr, error) {
	var v uint64
	nibbles := 0

	for i := 0; i < len(text) && i < macScanWindow && nibbles < macNibbles; i++ {
		c := text[i]
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		default:
			continue
		}
		v = v<<4 + d
		nibbles++
	}

	if nibbles != macNibbles {
		return 0, ErrInvalidMAC
	}
	return HardwareAddr(v), nil
}

// Bytes returns the six address bytes, most significant first.
func (a HardwareAddr) Bytes() [6]byte {
	return [6]byte{
		byte(a >> 40),
		byte(a >> 32),
		byte(a >> 24),
		byte(a >> 16),
		byte(a >> 8),
		byte(a),
	}
}

// String renders the address in lowercase colon notation.
func (a HardwareAddr) String() string {
	b := a.Bytes()
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", b[0], b[1], b[2], b[3], b[4], b[5])
}
