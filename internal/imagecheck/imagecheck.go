// Package imagecheck classifies byte buffers as valid images or rejects
// them with a reason. It sniffs magic bytes rather than decoding, so it
// accepts truncated image bodies but reliably rejects HTML error pages
// and tracking-pixel placeholders.
package imagecheck

import (
	"bytes"
	"strings"

	"github.com/logofetch/logofetch/internal/logo"
)

// MinImageBytes is the smallest payload accepted as a real image.
// Anything below it is assumed to be a placeholder or tracking pixel.
const MinImageBytes = 100

// Result is the outcome of validating one buffer.
type Result struct {
	Valid  bool
	Info   logo.ImageInfo
	Reason string
}

// signature identifies a binary image format by fixed bytes at a fixed
// offset.
type signature struct {
	offset    int
	magic     []byte
	format    string
	extension string
	mimeType  string
}

// Table order matters: RIFF is a loose 4-byte prefix shared by other
// container formats, so more specific signatures come first.
var signatures = []signature{
	{0, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "PNG", "png", "image/png"},
	{0, []byte{0xFF, 0xD8, 0xFF}, "JPEG", "jpg", "image/jpeg"},
	{0, []byte("GIF87a"), "GIF", "gif", "image/gif"},
	{0, []byte("GIF89a"), "GIF", "gif", "image/gif"},
	{0, []byte("RIFF"), "WEBP", "webp", "image/webp"},
	{0, []byte{0x00, 0x00, 0x01, 0x00}, "ICO", "ico", "image/x-icon"},
	{0, []byte("BM"), "BMP", "bmp", "image/bmp"},
	{0, []byte{0x49, 0x49, 0x2A, 0x00}, "TIFF", "tiff", "image/tiff"},
	{0, []byte{0x4D, 0x4D, 0x00, 0x2A}, "TIFF", "tiff", "image/tiff"},
	{4, []byte("ftypavif"), "AVIF", "avif", "image/avif"},
}

// Validate classifies buf. It is a pure function: identical buffers
// always yield identical results.
func Validate(buf []byte) Result {
	if len(buf) == 0 {
		return invalid(buf, "empty buffer")
	}
	if len(buf) < MinImageBytes {
		return invalid(buf, "too small, likely a placeholder")
	}
	if looksLikeHTML(buf) {
		return invalid(buf, "HTML document, not an image")
	}
	if looksLikeSVG(buf) {
		return valid(buf, "SVG", "svg", "image/svg+xml", true)
	}
	for _, sig := range signatures {
		if matchesSignature(buf, sig) {
			return valid(buf, sig.format, sig.extension, sig.mimeType, false)
		}
	}
	return invalid(buf, "unknown format")
}

func matchesSignature(buf []byte, sig signature) bool {
	end := sig.offset + len(sig.magic)
	if len(buf) < end {
		return false
	}
	return bytes.Equal(buf[sig.offset:end], sig.magic)
}

// looksLikeHTML sniffs the first 512 bytes for an HTML document
// signature, case-insensitively.
func looksLikeHTML(buf []byte) bool {
	head := strings.ToLower(string(prefix(buf, 512)))
	trimmed := strings.TrimLeft(head, " \t\r\n")
	if strings.HasPrefix(trimmed, "<!doctype html") ||
		strings.HasPrefix(trimmed, "<html") ||
		strings.HasPrefix(trimmed, "<!doctype") {
		return true
	}
	return strings.Contains(head, "<head>") && strings.Contains(head, "<body")
}

// looksLikeSVG sniffs the first 1024 bytes for an SVG signature.
func looksLikeSVG(buf []byte) bool {
	head := strings.ToLower(string(prefix(buf, 1024)))
	trimmed := strings.TrimLeft(head, " \t\r\n")
	if strings.HasPrefix(trimmed, "<?xml") && strings.Contains(head, "<svg") {
		return true
	}
	if strings.HasPrefix(trimmed, "<svg") {
		return true
	}
	return strings.Contains(head, "http://www.w3.org/2000/svg")
}

func prefix(buf []byte, n int) []byte {
	if len(buf) < n {
		return buf
	}
	return buf[:n]
}

func valid(buf []byte, format, ext, mime string, isSVG bool) Result {
	return Result{
		Valid: true,
		Info: logo.ImageInfo{
			Format:    format,
			Extension: ext,
			MIMEType:  mime,
			SizeBytes: len(buf),
			IsValid:   true,
			IsSVG:     isSVG,
		},
	}
}

func invalid(buf []byte, reason string) Result {
	return Result{
		Reason: reason,
		Info: logo.ImageInfo{
			SizeBytes: len(buf),
		},
	}
}
