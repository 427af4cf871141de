package keypoint

import (
	"errors"
	"fmt"
	"log/slog"
)

// BinaryMessenger delivers encoded messages to the engine.
type BinaryMessenger interface {
	Send(channel string, message []byte) error
}

// KeyEventSender forwards toolkit key callbacks to the engine as raw key
// events.
type KeyEventSender struct {
	messenger  BinaryMessenger
	translator *Translator
	codec      KeyEventCodec
}

// NewKeyEventSender creates a KeyEventSender. A nil translator is replaced
// by one with default options.
func NewKeyEventSender(m BinaryMessenger, t *Translator) *KeyEventSender {
	if t == nil {
		t = NewTranslator()
	}
	return &KeyEventSender{messenger: m, translator: t}
}

// HandleKey builds, encodes and sends the key event for in. Events with an
// unknown action are dropped without error.
func (s *KeyEventSender) HandleKey(in KeyInput) (err error) {
	event, err := s.translator.KeyEvent(in)
	if errors.Is(err, ErrUnknownAction) {
		Logger().Warn("keypoint: dropping key event", slog.Int("action", int(in.Action)), slog.Int("key", in.Key))
		return nil
	}
	if err != nil {
		Logger().Error("keypoint: failed to build key event", slog.Any("err", err))
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			Logger().Error("keypoint: recovered from panic while sending key event", slog.String("type", event.Type), slog.Any("panic", p))
			err = fmt.Errorf("keypoint.HandleKey: messenger panic: %v", p)
		}
	}()

	msg, err := s.codec.EncodeMessage(event)
	if err != nil {
		Logger().Error("keypoint: failed to encode key event", slog.Any("err", err))
		return fmt.Errorf("keypoint.HandleKey: encode: %w", err)
	}
	if err := s.messenger.Send(KeyEventChannel, msg); err != nil {
		Logger().Error("keypoint: failed to send key event", slog.String("channel", KeyEventChannel), slog.Any("err", err))
		return fmt.Errorf("keypoint.HandleKey: send: %w", err)
	}
	return nil
}
