package main

import (
	"errors"
	"fmt"

	"github.com/Chris82111/WakeOnLan/internal/config"
	"github.com/Chris82111/WakeOnLan/internal/wol"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func runWake(cmd *cobra.Command, args []string) error {
	req, err := gatherRequest(cmd)
	if err != nil {
		return err
	}

	svc := wol.New(log.Logger)
	report := svc.Wake(cmd.Context(), req)
	if report.Outcome != wol.OutcomeNone {
		// The service already logged the failing step.
		return fmt.Errorf("wake failed: %s", report.Outcome.Message())
	}
	return nil
}

// gatherRequest merges the target flags with the optional config file;
// flags win. Missing required parameters show the help text, and the
// process still exits nonzero.
func gatherRequest(cmd *cobra.Command) (wol.Request, error) {
	req := wol.Request{
		BroadcastIP: ipText,
		Port:        port,
		MAC:         macText,
	}

	if configFile != "" {
		cfg, err := config.NewParser().LoadFile(configFile)
		if err != nil {
			log.Error().Err(err).Str("file", configFile).Msg("failed to load config")
			return req, err
		}
		if err := config.Validate(cfg); err != nil {
			log.Error().Err(err).Msg("invalid configuration")
			return req, err
		}
		if cfg.Wake != nil {
			if req.BroadcastIP == "" {
				req.BroadcastIP = cfg.Wake.BroadcastIP
			}
			if req.MAC == "" {
				req.MAC = cfg.Wake.MACAddress
			}
			if !cmd.Flags().Changed("port") {
				req.Port = cfg.Wake.Port
			}
		}
	}

	if req.BroadcastIP == "" || req.MAC == "" {
		log.Error().Msg("an IP address (-i) and a MAC address (-m) are required")
		if !silent {
			_ = cmd.Help()
		}
		return req, errors.New("missing required flags")
	}

	return req, nil
}
