// Package models contains the data structures used throughout wol.
package models

// Settings holds the optional configuration file contents.
type Settings struct {
	Wake *WakeSettings // nil if not configured
}

// WakeSettings holds Wake-on-LAN target settings.
type WakeSettings struct {
	MACAddress  string
	BroadcastIP string
	Port        uint16
}
