package wol

import (
	"github.com/Chris82111/WakeOnLan/internal/netaddr"
)

const (
	syncLen        = 6
	macLen         = 6
	macRepetitions = 16

	// PacketSize is the fixed length of a magic packet: six 0xFF sync
	// bytes followed by sixteen repetitions of the MAC address.
	PacketSize = syncLen + macRepetitions*macLen
)

// MagicPacket is the 102-byte wake payload.
type MagicPacket [PacketSize]byte

// NewMagicPacket builds the wake payload for mac.
func NewMagicPacket(mac netaddr.HardwareAddr) MagicPacket {
	var p MagicPacket
	b := mac.Bytes()

	for i := 0; i < syncLen; i++ {
		p[i] = 0xFF
	}
	for rep := 1; rep <= macRepetitions; rep++ {
		copy(p[rep*macLen:(rep+1)*macLen], b[:])
	}
	return p
}

// Bytes returns the payload as a slice over a copy of the packet.
func (p MagicPacket) Bytes() []byte {
	return p[:]
}

// MAC returns the address the packet would wake.
func (p MagicPacket) MAC() netaddr.HardwareAddr {
	var v uint64
	for _, b := range p[syncLen : syncLen+macLen] {
		v = v<<8 | uint64(b)
	}
	return netaddr.HardwareAddr(v)
}

// ParseMagicPacket validates payload as a magic packet and extracts the
// target MAC. The sync bytes must all be 0xFF and every repetition must
// match the first.
func ParseMagicPacket(payload []byte) (netaddr.HardwareAddr, bool) {
	if len(payload) < PacketSize {
		return 0, false
	}
	for i := 0; i < syncLen; i++ {
		if payload[i] != 0xFF {
			return 0, false
		}
	}

	first := payload[syncLen : syncLen+macLen]
	for rep := 1; rep < macRepetitions; rep++ {
		offset := syncLen + rep*macLen
		for i := 0; i < macLen; i++ {
			if payload[offset+i] != first[i] {
				return 0, false
			}
		}
	}

	var v uint64
	for _, b := range first {
		v = v<<8 | uint64(b)
	}
	return netaddr.HardwareAddr(v), true
}
