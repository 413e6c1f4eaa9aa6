// Package validation checks uploaded files before anything is sent over
// the network. Rejections here are input errors, reported immediately.
package validation

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrNotPDF is returned for any file that is not a PDF, whether by
// declared content type or by actual content.
var ErrNotPDF = errors.New("file is not a PDF")

// pdfMagic is the signature every PDF starts with.
var pdfMagic = []byte("%PDF-")

// ValidatePDF verifies the declared content type and the file's magic
// bytes. The declared type alone is not trusted; the content check runs
// either way.
func ValidatePDF(contentType string, data []byte) error {
	if contentType != "" && contentType != "application/pdf" {
		return fmt.Errorf("%w: declared content type %q", ErrNotPDF, contentType)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: file is empty", ErrNotPDF)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return fmt.Errorf("%w: missing PDF signature", ErrNotPDF)
	}
	return nil
}
