package main

import (
	"fmt"

	"github.com/Chris82111/WakeOnLan/internal/netaddr"
	"github.com/Chris82111/WakeOnLan/internal/wol"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate wake parameters without sending",
	Long: `Parse the IP and MAC address exactly as the transmitter would,
without any socket I/O.`,
	RunE: validateTarget,
}

func validateTarget(cmd *cobra.Command, args []string) error {
	req, err := gatherRequest(cmd)
	if err != nil {
		return err
	}

	ip, err := netaddr.ParseIPv4(req.BroadcastIP, wol.IPScanWindow, 0)
	if err != nil {
		log.Error().Err(err).Str("ip", req.BroadcastIP).Msg("invalid IP address")
		return err
	}

	mac, err := netaddr.ParseMAC(req.MAC)
	if err != nil {
		log.Error().Err(err).Str("mac", req.MAC).Msg("invalid MAC address")
		return err
	}

	if silent {
		return nil
	}

	fmt.Println("Target is valid!")
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  Broadcast IP: %s (0x%08X)\n", ip, uint32(ip))
	fmt.Printf("  MAC Address:  %s\n", mac)
	fmt.Printf("  Port:         %d\n", req.Port)
	fmt.Printf("  Payload:      %d bytes\n", wol.PacketSize)

	return nil
}
