package exporter

import (
	"errors"

	"github.com/atotto/clipboard"
)

// CopyToClipboard places the artifact text on the system clipboard.
func CopyToClipboard(text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	return clipboard.WriteAll(text)
}
