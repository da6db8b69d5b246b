package sbgc

import "errors"

var ErrDataTooLarge = errors.New("sbgc: payload exceeds max frame data size")

// Encode serializes cmd as one wire frame.
func Encode(cmd Command) ([]byte, error) {
	if len(cmd.Data) > MaxDataBytes {
		return nil, ErrDataTooLarge
	}
	n := byte(len(cmd.Data))
	buf := make([]byte, 0, frameOverhead+len(cmd.Data))
	buf = append(buf, StartByte, cmd.ID, n, cmd.ID+n)
	var sum byte
	for _, b := range cmd.Data {
		sum += b
	}
	buf = append(buf, cmd.Data...)
	buf = append(buf, sum)
	return buf, nil
}
