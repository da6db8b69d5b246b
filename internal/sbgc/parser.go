package sbgc

// Wire framing constants. A frame is StartByte, command id, payload length,
// header checksum ((id+len) mod 256), payload, payload checksum (byte sum of
// the payload).
const (
	StartByte byte = 0x3E // '>'

	MaxFrameBytes = 255
	frameOverhead = 5
	MaxDataBytes  = MaxFrameBytes - frameOverhead
)

type parseState int

const (
	stateWaitStart parseState = iota
	stateWaitID
	stateWaitLen
	stateWaitHeaderChecksum
	stateWaitPayload
	stateWaitChecksum
)

// Parser is the stateful frame state machine. It decodes at most one frame at
// a time, byte by byte. Bytes arriving before a start byte are skipped
// silently; checksum and length faults bump the error counter and return the
// machine to header sync.
type Parser struct {
	state    parseState
	errCount int
	id       uint8
	need     int
	checksum byte
	data     []byte
	cmd      Command
}

func NewParser() *Parser {
	return &Parser{data: make([]byte, 0, MaxDataBytes)}
}

// Reset resynchronizes the machine to header sync. The error counter is
// preserved so callers can track faults across resynchronization.
func (p *Parser) Reset() {
	p.state = stateWaitStart
	p.data = p.data[:0]
}

// ProcessByte feeds one byte and reports whether it completed a frame.
func (p *Parser) ProcessByte(c byte) bool {
	switch p.state {
	case stateWaitStart:
		if c == StartByte {
			p.state = stateWaitID
		}
	case stateWaitID:
		p.id = c
		p.state = stateWaitLen
	case stateWaitLen:
		p.need = int(c)
		p.state = stateWaitHeaderChecksum
	case stateWaitHeaderChecksum:
		if c != p.id+byte(p.need) || p.need > MaxDataBytes {
			p.fault()
			break
		}
		p.checksum = 0
		p.data = p.data[:0]
		if p.need == 0 {
			p.state = stateWaitChecksum
		} else {
			p.state = stateWaitPayload
		}
	case stateWaitPayload:
		p.data = append(p.data, c)
		p.checksum += c
		if len(p.data) == p.need {
			p.state = stateWaitChecksum
		}
	case stateWaitChecksum:
		if c != p.checksum {
			p.fault()
			break
		}
		p.cmd = Command{ID: p.id, Data: append([]byte(nil), p.data...)}
		p.state = stateWaitStart
		return true
	}
	return false
}

// ErrorCount reports faults seen since construction. Reset does not clear it.
func (p *Parser) ErrorCount() int {
	return p.errCount
}

// Command returns the last fully decoded command.
func (p *Parser) Command() Command {
	return p.cmd
}

// CommandID returns the id of the last fully decoded command.
func (p *Parser) CommandID() uint8 {
	return p.cmd.ID
}

func (p *Parser) fault() {
	p.errCount++
	p.state = stateWaitStart
	p.data = p.data[:0]
}
