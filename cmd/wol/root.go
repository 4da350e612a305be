package main

import (
	"os"
	"strings"

	"github.com/Chris82111/WakeOnLan/internal/wol"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Configuration flags.
	configFile string
	ipText     string
	macText    string
	port       uint16
	silent     bool
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "wol",
	Short: "Send a Wake-On-LAN magic packet",
	Long: `wol powers on a remote machine by sending a magic packet to its
network card over UDP broadcast.

The target is named by its IPv4 broadcast address and MAC address,
given as flags or through a YAML config file. The packet is sent once;
Wake-On-LAN is fire-and-forget and receipt cannot be confirmed.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWake,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file with a wol section")
	rootCmd.PersistentFlags().StringVarP(&ipText, "ip", "i", "", "IPv4 broadcast address of the target (required)")
	rootCmd.PersistentFlags().StringVarP(&macText, "mac", "m", "", "MAC address of the target (required)")
	rootCmd.PersistentFlags().Uint16VarP(&port, "port", "p", wol.DefaultPort, "UDP port to send to")
	rootCmd.PersistentFlags().BoolVarP(&silent, "silent", "s", false, "mute output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output logs in JSON format")

	rootCmd.AddCommand(validateCmd)
}

func setupLogging() {
	// Set output format
	if jsonOutput {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		output.FormatLevel = func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return ""
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set log level
	switch {
	case silent:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
