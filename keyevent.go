package keypoint

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned for key actions other than press, release
// and repeat.
var ErrUnknownAction = errors.New("keypoint: unknown key action")

// KeyAction is the toolkit's key action, using GLFW values.
type KeyAction int

const (
	Release KeyAction = 0
	Press   KeyAction = 1
	Repeat  KeyAction = 2
)

// ModifierKey is the set of modifier keys held down, using GLFW bits.
type ModifierKey int

const (
	ModShift    ModifierKey = 0x0001
	ModControl  ModifierKey = 0x0002
	ModAlt      ModifierKey = 0x0004
	ModSuper    ModifierKey = 0x0008
	ModCapsLock ModifierKey = 0x0010
	ModNumLock  ModifierKey = 0x0020
)

// Keymap selects the raw key event flavour expected by the engine.
type Keymap string

const (
	KeymapLinux Keymap = "linux"
	KeymapMacOS Keymap = "macos"
)

// GLFW key codes of the modifier keys
const (
	KeyCapsLock     = 280
	KeyNumLock      = 282
	KeyLeftShift    = 340
	KeyLeftControl  = 341
	KeyLeftAlt      = 342
	KeyLeftSuper    = 343
	KeyRightShift   = 344
	KeyRightControl = 345
	KeyRightAlt     = 346
	KeyRightSuper   = 347
)

// macOS modifier masks, as read by the engine's RawKeyEventDataMacOs
const (
	macOSModifierCapsLock   = 0x10000
	macOSModifierShift      = 0x20000
	macOSModifierControl    = 0x40000
	macOSModifierOption     = 0x80000
	macOSModifierCommand    = 0x100000
	macOSModifierNumericPad = 0x200000
)

var macOSModifierKeys = map[int]int{
	KeyLeftControl:  macOSModifierControl,
	KeyLeftShift:    macOSModifierShift,
	KeyLeftAlt:      macOSModifierOption,
	KeyLeftSuper:    macOSModifierCommand,
	KeyRightControl: macOSModifierControl,
	KeyRightShift:   macOSModifierShift,
	KeyRightAlt:     macOSModifierOption,
	KeyRightSuper:   macOSModifierCommand,
	KeyCapsLock:     macOSModifierCapsLock,
	KeyNumLock:      macOSModifierNumericPad,
}

// KeyInput carries the arguments of a toolkit key callback together with
// the printable name of the key, empty for non-printable keys.
type KeyInput struct {
	Key      int
	ScanCode int
	Action   KeyAction
	Mods     ModifierKey
	Name     string
}

// KeyEvent is the raw keyboard message sent on the key event channel.
type KeyEvent struct {
	// Common
	Keymap    Keymap `json:"keymap"`
	Character string `json:"character"`
	KeyCode   int    `json:"keyCode"`
	Modifiers int    `json:"modifiers"`
	Type      string `json:"type"`

	// Linux
	Toolkit             string `json:"toolkit,omitempty"`
	ScanCode            int    `json:"scanCode,omitempty"`
	UnicodeScalarValues uint32 `json:"unicodeScalarValues,omitempty"`

	// MacOS
	CharactersIgnoringModifiers string `json:"charactersIgnoringModifiers,omitempty"`
	Characters                  string `json:"characters,omitempty"`
}

// eventType maps an action onto the two event types the engine knows.
// Repeats are reported as key downs.
func eventType(a KeyAction) (string, error) {
	switch a {
	case Release:
		return "keyup", nil
	case Press, Repeat:
		return "keydown", nil
	default:
		return "", fmt.Errorf("keypoint.eventType: action %d: %w", a, ErrUnknownAction)
	}
}

// ToMacOSModifiers converts toolkit modifier bits to macOS modifier masks.
func ToMacOSModifiers(mods ModifierKey) int {
	macOSMods := 0
	if mods&ModControl != 0 {
		macOSMods |= macOSModifierControl
	}
	if mods&ModShift != 0 {
		macOSMods |= macOSModifierShift
	}
	if mods&ModAlt != 0 {
		macOSMods |= macOSModifierOption
	}
	if mods&ModSuper != 0 {
		macOSMods |= macOSModifierCommand
	}
	return macOSMods
}

// KeyEvent builds the raw key event for in, in the keymap of t.
func (t *Translator) KeyEvent(in KeyInput) (KeyEvent, error) {
	typ, err := eventType(in.Action)
	if err != nil {
		return KeyEvent{}, err
	}

	var event KeyEvent
	switch t.opts.keymap {
	case KeymapMacOS:
		mods := ToMacOSModifiers(in.Mods)
		// The toolkit reports the modifier state from before this event.
		if m, ok := macOSModifierKeys[in.Key]; ok {
			mods |= m
		}
		event = KeyEvent{
			Keymap:                      KeymapMacOS,
			KeyCode:                     in.Key,
			Type:                        typ,
			Character:                   in.Name,
			CharactersIgnoringModifiers: in.Name,
			Characters:                  in.Name,
			Modifiers:                   mods,
		}
	default:
		event = KeyEvent{
			Keymap:    KeymapLinux,
			Toolkit:   "glfw",
			KeyCode:   in.Key,
			ScanCode:  in.ScanCode,
			Type:      typ,
			Modifiers: int(in.Mods),
			Character: in.Name,
		}
	}

	if in.Name != "" {
		v, err := t.CodePoint(in.Name)
		if err != nil {
			return KeyEvent{}, fmt.Errorf("keypoint.KeyEvent: key name %q: %w", in.Name, err)
		}
		event.UnicodeScalarValues = v
	}
	return event, nil
}
