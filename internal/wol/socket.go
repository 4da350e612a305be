package wol

import (
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/Chris82111/WakeOnLan/internal/netaddr"
)

// DatagramSocket is the capability the transmitter needs from the
// platform: open an IPv4/UDP socket, allow broadcast, send one
// datagram, close. Implementations must tolerate Close after a failed
// intermediate step.
type DatagramSocket interface {
	Open() error
	EnableBroadcast() error
	SendTo(payload []byte, ip netaddr.Address, port uint16) error
	Close() error
}

// udpSocket is the production DatagramSocket over the net package. The
// broadcast option is applied through the raw connection; the
// per-platform setBroadcast lives in socket_unix.go / socket_windows.go.
type udpSocket struct {
	conn net.PacketConn
}

func (s *udpSocket) Open() error {
	conn, err := net.ListenPacket("udp4", ":0")
	if err != nil {
		return err
	}
	s.conn = conn
	return nil
}

func (s *udpSocket) EnableBroadcast() error {
	sc, ok := s.conn.(syscall.Conn)
	if !ok {
		return fmt.Errorf("connection %T does not expose a raw socket", s.conn)
	}
	raw, err := sc.SyscallConn()
	if err != nil {
		return err
	}

	var optErr error
	if err := raw.Control(func(fd uintptr) {
		optErr = setBroadcast(fd)
	}); err != nil {
		return err
	}
	return optErr
}

func (s *udpSocket) SendTo(payload []byte, ip netaddr.Address, port uint16) error {
	// WriteTo puts address and port in network byte order on the wire.
	_, err := s.conn.WriteTo(payload, &net.UDPAddr{IP: ip.IP(), Port: int(port)})
	return err
}

func (s *udpSocket) Close() error {
	return s.conn.Close()
}

// errnoOf extracts the platform error number from err for diagnostic
// reports: 0 when err is nil, -1 when no errno is attached.
func errnoOf(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return -1
}
