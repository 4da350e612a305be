// Package config provides configuration file parsing.
package config

import (
	"fmt"
	"strings"

	"github.com/Chris82111/WakeOnLan/internal/models"
	"github.com/Chris82111/WakeOnLan/internal/wol"
	"github.com/spf13/viper"
)

// Parser handles configuration file parsing.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	v := viper.New()
	v.SetConfigType("yaml")
	return &Parser{v: v}
}

// LoadFile loads configuration from a file path.
func (p *Parser) LoadFile(path string) (*models.Settings, error) {
	p.v.SetConfigFile(path)

	if err := p.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return p.parse()
}

// LoadReader loads configuration from a reader (useful for testing).
func (p *Parser) LoadReader(content string) (*models.Settings, error) {
	if err := p.v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return p.parse()
}

func (p *Parser) parse() (*models.Settings, error) {
	cfg := &models.Settings{}

	// Parse optional WOL config.
	if p.v.IsSet("wol") {
		cfg.Wake = &models.WakeSettings{
			MACAddress:  p.v.GetString("wol.mac_address"),
			BroadcastIP: p.v.GetString("wol.broadcast_ip"),
			Port:        p.v.GetUint16("wol.port"),
		}

		if cfg.Wake.MACAddress == "" {
			return nil, fmt.Errorf("wol.mac_address is required when wol is configured")
		}

		// Set defaults.
		if cfg.Wake.BroadcastIP == "" {
			cfg.Wake.BroadcastIP = "255.255.255.255"
		}
		if cfg.Wake.Port == 0 {
			cfg.Wake.Port = wol.DefaultPort
		}
	}

	return cfg, nil
}

// Validate performs validation on the loaded configuration.
func Validate(cfg *models.Settings) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if cfg.Wake != nil && cfg.Wake.MACAddress == "" {
		return fmt.Errorf("wol.mac_address is required")
	}

	return nil
}
