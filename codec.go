package keypoint

import "encoding/json"

// KeyEventChannel is the platform channel raw key events are sent on.
const KeyEventChannel = "flutter/keyevent"

// KeyEventCodec encodes key events as JSON messages.
type KeyEventCodec struct{}

// EncodeMessage encodes a KeyEvent to a slice of bytes.
func (KeyEventCodec) EncodeMessage(message interface{}) ([]byte, error) {
	return json.Marshal(message)
}

// DecodeMessage returns nil: the key event channel is send-only.
func (KeyEventCodec) DecodeMessage(binaryMessage []byte) (interface{}, error) {
	return nil, nil
}
