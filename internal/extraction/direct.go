package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// directStrategy pulls the embedded text layer out of a PDF.
// Fast, but yields little or nothing for scanned documents.
type directStrategy struct{}

func (directStrategy) Name() string {
	return "direct"
}

func (directStrategy) Extract(_ context.Context, data []byte) (text string, err error) {
	// the pdf library panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf text layer read panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read text layer: %w", err)
	}

	content, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("read text layer: %w", err)
	}

	return string(content), nil
}
