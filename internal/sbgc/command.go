package sbgc

// Command ids from the SimpleBGC 2.x serial protocol.
const (
	CmdControl      uint8 = 67
	CmdRealtimeData uint8 = 68
	CmdGetAngles    uint8 = 73
	CmdMotorsOn     uint8 = 77
	CmdReadParams   uint8 = 82
	CmdBoardInfo    uint8 = 86
	CmdWriteParams  uint8 = 87
	CmdMotorsOff    uint8 = 109
	CmdReset        uint8 = 114
)

// Command is one decoded serial command: id plus raw payload.
type Command struct {
	ID   uint8
	Data []byte
}
