package wol

// Outcome identifies which step of a wake attempt failed, if any.
// The ordinals are stable and double as indexes into the message table.
type Outcome int

const (
	// OutcomeNone means the magic packet was sent.
	OutcomeNone Outcome = iota
	// OutcomeUnknown is the zero state of a report before any step ran.
	OutcomeUnknown
	// OutcomeIPParse means the broadcast address text was rejected.
	OutcomeIPParse
	// OutcomeMACParse means the MAC address text was rejected.
	OutcomeMACParse
	// OutcomeNetworkInit means the platform socket subsystem failed to
	// start. The Go runtime performs this startup itself, so the
	// default socket never reports it; the ordinal is kept for report
	// compatibility.
	OutcomeNetworkInit
	// OutcomeNetworkVersion means the platform socket subsystem version
	// was unusable. Kept for report compatibility, as above.
	OutcomeNetworkVersion
	// OutcomeSocketCreate means the datagram socket could not be opened.
	OutcomeSocketCreate
	// OutcomeSocketOption means broadcast could not be enabled.
	OutcomeSocketOption
	// OutcomeSend means the datagram could not be sent.
	OutcomeSend
	// OutcomeSocketClose means the socket could not be closed.
	OutcomeSocketClose
)

// outcomeMessages is indexed by Outcome; the empty string terminates
// the table.
var outcomeMessages = [...]string{
	OutcomeNone:            "Execution successful",
	OutcomeUnknown:         "Unknown error",
	OutcomeIPParse:         "Failed to convert IP",
	OutcomeMACParse:        "Failed to parse hexadecimal MAC",
	OutcomeNetworkInit:     "Network subsystem startup failed",
	OutcomeNetworkVersion:  "Could not find a usable network subsystem version",
	OutcomeSocketCreate:    "Socket creation failed",
	OutcomeSocketOption:    "Failed to set socket options",
	OutcomeSend:            "Failed to send packet",
	OutcomeSocketClose:     "Failed to close socket",
	OutcomeSocketClose + 1: "",
}

var outcomeNames = [...]string{
	OutcomeNone:           "success",
	OutcomeUnknown:        "unknown",
	OutcomeIPParse:        "ip_parse_failed",
	OutcomeMACParse:       "mac_parse_failed",
	OutcomeNetworkInit:    "network_init_failed",
	OutcomeNetworkVersion: "network_version_unsupported",
	OutcomeSocketCreate:   "socket_create_failed",
	OutcomeSocketOption:   "socket_option_failed",
	OutcomeSend:           "send_failed",
	OutcomeSocketClose:    "socket_close_failed",
}

// Message returns the human-readable text for the outcome.
func (o Outcome) Message() string {
	if o < OutcomeNone || o > OutcomeSocketClose {
		return outcomeMessages[OutcomeUnknown]
	}
	return outcomeMessages[o]
}

// String returns a short identifier suitable for log fields.
func (o Outcome) String() string {
	if o < OutcomeNone || o > OutcomeSocketClose {
		return outcomeNames[OutcomeUnknown]
	}
	return outcomeNames[o]
}
