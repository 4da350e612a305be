package wol

import (
	"testing"

	"github.com/Chris82111/WakeOnLan/internal/netaddr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagicPacket_Layout(t *testing.T) {
	mac, err := netaddr.ParseMAC("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)

	pkt := NewMagicPacket(mac)
	payload := pkt.Bytes()

	require.Len(t, payload, 102)

	for i := 0; i < 6; i++ {
		assert.Equal(t, byte(0xFF), payload[i], "sync byte %d", i)
	}

	want := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	for rep := 1; rep <= 16; rep++ {
		assert.Equal(t, want, payload[rep*6:(rep+1)*6], "repetition %d", rep)
	}
}

func TestNewMagicPacket_Deterministic(t *testing.T) {
	mac, err := netaddr.ParseMAC("01:23:45:67:89:ab")
	require.NoError(t, err)

	assert.Equal(t, NewMagicPacket(mac), NewMagicPacket(mac))
}

func TestMagicPacket_MAC(t *testing.T) {
	mac, err := netaddr.ParseMAC("01:23:45:67:89:ab")
	require.NoError(t, err)

	pkt := NewMagicPacket(mac)
	assert.Equal(t, mac, pkt.MAC())
}

func TestParseMagicPacket_RoundTrip(t *testing.T) {
	mac, err := netaddr.ParseMAC("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)

	pkt := NewMagicPacket(mac)

	got, ok := ParseMagicPacket(pkt.Bytes())
	require.True(t, ok)
	assert.Equal(t, mac, got)
}

func TestParseMagicPacket_Rejects(t *testing.T) {
	mac, err := netaddr.ParseMAC("AA:BB:CC:DD:EE:FF")
	require.NoError(t, err)
	pkt := NewMagicPacket(mac)

	// Too short.
	_, ok := ParseMagicPacket(pkt.Bytes()[:101])
	assert.False(t, ok)

	// Broken sync pattern.
	bad := pkt
	bad[0] = 0x00
	_, ok = ParseMagicPacket(bad.Bytes())
	assert.False(t, ok)

	// A repetition that does not match the first.
	bad = pkt
	bad[100] ^= 0x01
	_, ok = ParseMagicPacket(bad.Bytes())
	assert.False(t, ok)
}
