// Command keypoint prints the Unicode scalar value of key names.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	keypoint "github.com/42atomys/go-keypoint"
)

func main() {
	var (
		asJSON  = flag.Bool("json", false, "print raw key events as JSON")
		keymap  = flag.String("keymap", "linux", "key event flavour: linux or macos")
		nfc     = flag.Bool("nfc", true, "NFC-normalize key names before decoding")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		keypoint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	km := keypoint.Keymap(*keymap)
	if km != keypoint.KeymapLinux && km != keypoint.KeymapMacOS {
		log.Fatalf("unknown keymap %q", *keymap)
	}

	t := keypoint.NewTranslator(keypoint.WithKeymap(km), keypoint.WithNormalization(*nfc))
	if err := run(os.Stdout, t, flag.Args(), *asJSON); err != nil {
		log.Fatal(err)
	}
}

// stdoutMessenger writes each message on its own line.
type stdoutMessenger struct {
	w io.Writer
}

func (m stdoutMessenger) Send(_ string, message []byte) error {
	_, err := fmt.Fprintf(m.w, "%s\n", message)
	return err
}

func run(w io.Writer, t *keypoint.Translator, names []string, asJSON bool) error {
	sender := keypoint.NewKeyEventSender(stdoutMessenger{w: w}, t)

	failed := 0
	for _, name := range names {
		// A key event without a name carries no code point.
		if name == "" {
			fmt.Fprintf(os.Stderr, "%q: %v\n", name, keypoint.ErrEmptyInput)
			failed++
			continue
		}

		if asJSON {
			if err := sender.HandleKey(keypoint.KeyInput{Action: keypoint.Press, Name: name}); err != nil {
				fmt.Fprintf(os.Stderr, "%q: %v\n", name, err)
				failed++
			}
			continue
		}

		v, err := t.CodePoint(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%q: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "%s\tU+%04X\n", name, v)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d key names failed to decode", failed, len(names))
	}
	return nil
}
