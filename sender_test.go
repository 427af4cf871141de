package keypoint

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMessenger struct {
	channels []string
	messages [][]byte
	err      error
	panicked bool
}

func (m *recordingMessenger) Send(channel string, message []byte) error {
	if m.panicked {
		panic("engine gone")
	}
	m.channels = append(m.channels, channel)
	m.messages = append(m.messages, message)
	return m.err
}

func TestKeyEventCodec(t *testing.T) {
	codec := KeyEventCodec{}

	msg, err := codec.EncodeMessage(KeyEvent{Keymap: KeymapLinux, Type: "keyup", KeyCode: 32, Character: " ", UnicodeScalarValues: ' '})
	require.NoError(t, err)
	assert.JSONEq(t, `{"keymap":"linux","character":" ","keyCode":32,"modifiers":0,"type":"keyup","unicodeScalarValues":32}`, string(msg))

	decoded, err := codec.DecodeMessage(msg)
	assert.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestKeyEventSenderHandleKey(t *testing.T) {
	m := &recordingMessenger{}
	s := NewKeyEventSender(m, nil)

	err := s.HandleKey(KeyInput{Key: 65, ScanCode: 38, Action: Press, Name: "a"})
	require.NoError(t, err)

	require.Len(t, m.messages, 1)
	assert.Equal(t, KeyEventChannel, m.channels[0])
	assert.JSONEq(t, `{
		"keymap": "linux",
		"character": "a",
		"keyCode": 65,
		"modifiers": 0,
		"type": "keydown",
		"toolkit": "glfw",
		"scanCode": 38,
		"unicodeScalarValues": 97
	}`, string(m.messages[0]))
}

func TestKeyEventSenderNonPrintable(t *testing.T) {
	m := &recordingMessenger{}
	s := NewKeyEventSender(m, NewTranslator())

	require.NoError(t, s.HandleKey(KeyInput{Key: KeyLeftShift, ScanCode: 50, Action: Release}))
	require.Len(t, m.messages, 1)
	assert.NotContains(t, string(m.messages[0]), "unicodeScalarValues")
}

func TestKeyEventSenderDropsUnknownAction(t *testing.T) {
	var buf bytes.Buffer
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	m := &recordingMessenger{}
	s := NewKeyEventSender(m, nil)

	assert.NoError(t, s.HandleKey(KeyInput{Key: 65, Action: KeyAction(9), Name: "a"}))
	assert.Empty(t, m.messages)
	assert.Contains(t, buf.String(), "dropping key event")
}

func TestKeyEventSenderErrors(t *testing.T) {
	sendErr := errors.New("channel closed")
	m := &recordingMessenger{err: sendErr}
	s := NewKeyEventSender(m, NewTranslator(WithNormalization(false)))

	err := s.HandleKey(KeyInput{Key: 65, Action: Press, Name: "a"})
	assert.ErrorIs(t, err, sendErr)

	err = s.HandleKey(KeyInput{Key: 65, Action: Press, Name: "\xC3"})
	assert.ErrorIs(t, err, ErrShortBuffer)
	assert.Len(t, m.messages, 1, "undecodable names are not sent")
}

func TestKeyEventSenderRecoversPanic(t *testing.T) {
	s := NewKeyEventSender(&recordingMessenger{panicked: true}, nil)

	var err error
	assert.NotPanics(t, func() {
		err = s.HandleKey(KeyInput{Key: 65, Action: Press, Name: "a"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine gone")
}
