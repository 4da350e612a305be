// Package wol builds Wake-on-LAN magic packets and transmits them as a
// single UDP broadcast datagram.
package wol

import (
	"context"

	"github.com/Chris82111/WakeOnLan/internal/netaddr"
	"github.com/rs/zerolog"
)

// DefaultPort is the UDP port magic packets are sent to unless the
// caller chooses another.
const DefaultPort = 60000

// IPScanWindow limits where an address part may start, matching the
// historic transmitter.
const IPScanWindow = 13

// Request names a wake target before validation.
type Request struct {
	BroadcastIP string
	Port        uint16
	MAC         string
}

// Report records what a wake attempt did: the addresses that were
// successfully parsed, the final outcome, and the platform error number
// of the failing step (0 on success, -1 when the step has no errno).
type Report struct {
	IPv4      netaddr.Address
	MAC       netaddr.HardwareAddr
	Outcome   Outcome
	LastError int
	Err       error
}

// Service defines the interface for sending wake packets.
type Service interface {
	Wake(ctx context.Context, req Request) *Report
}

// Impl implements the wake Service.
type Impl struct {
	newSocket func() DatagramSocket
	logger    zerolog.Logger
}

// New creates a wake service using the platform UDP socket.
func New(logger zerolog.Logger) *Impl {
	return NewWithSocket(logger, func() DatagramSocket { return &udpSocket{} })
}

// NewWithSocket creates a wake service with a custom socket factory
// (for testing).
func NewWithSocket(logger zerolog.Logger, newSocket func() DatagramSocket) *Impl {
	return &Impl{
		newSocket: newSocket,
		logger:    logger,
	}
}

// Wake parses the request, builds the magic packet and sends it once.
// The steps run in order and the first failure decides the outcome;
// nothing is retried, since a wake broadcast is unacknowledged by
// nature. A socket that was opened is always closed, and a close
// failure takes over the outcome.
func (s *Impl) Wake(ctx context.Context, req Request) *Report {
	report := &Report{Outcome: OutcomeUnknown}

	ip, err := netaddr.ParseIPv4(req.BroadcastIP, IPScanWindow, 0)
	if err != nil {
		return s.fail(report, OutcomeIPParse, err)
	}
	report.IPv4 = ip

	mac, err := netaddr.ParseMAC(req.MAC)
	if err != nil {
		return s.fail(report, OutcomeMACParse, err)
	}
	report.MAC = mac

	if err := ctx.Err(); err != nil {
		return s.fail(report, OutcomeUnknown, err)
	}

	// The Go runtime starts the platform socket subsystem on demand,
	// so there is no separate init step; OutcomeNetworkInit and
	// OutcomeNetworkVersion stay reserved for sockets that need one.
	sock := s.newSocket()
	if err := sock.Open(); err != nil {
		return s.fail(report, OutcomeSocketCreate, err)
	}

	outcome, stepErr := s.transmit(sock, ip, mac, req.Port)

	if err := sock.Close(); err != nil {
		outcome, stepErr = OutcomeSocketClose, err
	}

	if outcome != OutcomeNone {
		return s.fail(report, outcome, stepErr)
	}

	report.Outcome = OutcomeNone
	s.logger.Info().
		Str("ip", ip.String()).
		Str("mac", mac.String()).
		Uint16("port", req.Port).
		Msg("magic packet sent")
	return report
}

func (s *Impl) transmit(sock DatagramSocket, ip netaddr.Address, mac netaddr.HardwareAddr, port uint16) (Outcome, error) {
	if err := sock.EnableBroadcast(); err != nil {
		return OutcomeSocketOption, err
	}

	pkt := NewMagicPacket(mac)

	s.logger.Debug().
		Str("ip", ip.String()).
		Str("mac", mac.String()).
		Uint16("port", port).
		Int("bytes", PacketSize).
		Msg("sending magic packet")

	if err := sock.SendTo(pkt.Bytes(), ip, port); err != nil {
		return OutcomeSend, err
	}
	return OutcomeNone, nil
}

func (s *Impl) fail(report *Report, outcome Outcome, err error) *Report {
	report.Outcome = outcome
	report.Err = err
	report.LastError = errnoOf(err)

	s.logger.Error().
		Err(err).
		Str("outcome", outcome.String()).
		Int("last_error", report.LastError).
		Msg(outcome.Message())
	return report
}
