package decode

import (
	"fmt"

	"github.com/gimbalworks/sbgcdec/internal/sbgc"
)

type PortDirection int

const (
	In PortDirection = iota
	Out
)

type PortType int

const (
	PortByte PortType = iota
	PortReal
)

// Port describes one block port for host-side sizing validation.
type Port struct {
	Name      string
	Direction PortDirection
	Width     int
	Type      PortType
}

// Ports is the block's port table: a byte command buffer and a real readiness
// gate in, two real scalars out. The gate threshold is 0.5.
func Ports() []Port {
	return []Port{
		{Name: "command_buffer", Direction: In, Width: sbgc.MaxFrameBytes, Type: PortByte},
		{Name: "ready", Direction: In, Width: 1, Type: PortReal},
		{Name: "command_id", Direction: Out, Width: 1, Type: PortReal},
		{Name: "completion", Direction: Out, Width: 1, Type: PortReal},
	}
}

// ValidateBuffer enforces the input port width. An oversize buffer is a host
// sizing fault, not a recoverable decode condition.
func ValidateBuffer(buf []byte) error {
	if len(buf) > sbgc.MaxFrameBytes {
		return fmt.Errorf("decode: buffer width %d exceeds port width %d", len(buf), sbgc.MaxFrameBytes)
	}
	return nil
}
