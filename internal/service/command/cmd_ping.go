package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/defendiq/internal/core"
)

const defaultPingHost = "destination"

// pingTranscript is a canned Windows-style ping reply. Nothing is sent on
// the network.
const pingTranscript = `
Pinging %[1]s with 32 bytes of data:
Reply from %[1]s: bytes=32 time=12ms TTL=58
Reply from %[1]s: bytes=32 time=11ms TTL=58
Reply from %[1]s: bytes=32 time=12ms TTL=58

Ping statistics for %[1]s:
    Packets: Sent = 3, Received = 3, Lost = 0 (0%% loss),
Approximate round trip times in milli-seconds:
    Minimum = 11ms, Maximum = 12ms, Average = 11ms
`

type PingCommand struct{}

func NewPingCommand() *PingCommand {
	return &PingCommand{}
}

func (c *PingCommand) Name() string {
	return "ping"
}

func (c *PingCommand) Usage() string {
	return "ping <host>"
}

func (c *PingCommand) Description() string {
	return "Simulates a ping to a host (e.g., ping 8.8.8.8)."
}

func (c *PingCommand) Execute(ctx context.Context, sessionID string, args []string) (core.Result, error) {
	host := defaultPingHost
	if len(args) > 0 {
		host = args[0]
	}
	return core.Append(fmt.Sprintf(pingTranscript, host)), nil
}
