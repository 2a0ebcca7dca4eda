package syncengine

import "github.com/atotto/clipboard"

// Clipboard copies text for the user.
type Clipboard interface {
	Available() bool
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard (pbcopy, xclip/xsel, wl-copy, Win32).
type SystemClipboard struct{}

// Available reports whether a clipboard utility was found.
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// WriteAll copies text to the clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text) //nolint:wrapcheck // caller only reports failure
}
