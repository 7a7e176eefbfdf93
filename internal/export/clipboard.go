package export

import (
	"errors"

	"github.com/atotto/clipboard"
)

// CopyToClipboard places text on the system clipboard.
func CopyToClipboard(text string) error {
	if text == "" {
		return errors.New("nothing to copy: rendered text is empty")
	}
	if clipboard.Unsupported {
		return errors.New("clipboard is not available on this system")
	}
	return clipboard.WriteAll(text)
}
