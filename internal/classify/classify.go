// Package classify decides whether a file is worth reading as text and decodes
// it when it is.
//
// Classification runs cheapest check first: the file extension, then a bounded
// read followed by content sniffing and charset detection.
package classify

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SkipReason explains why a file was not scanned
type SkipReason int

const (
	SkipNone            SkipReason = iota // File decoded, scan it
	SkipBinaryExtension                   // Known binary extension
	SkipTooLarge                          // Larger than the size cap
	SkipBinaryContent                     // Content sniffed as non-text or undecodable
)

// String returns a short label used in log lines
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipBinaryExtension:
		return "binary extension"
	case SkipTooLarge:
		return "too large"
	case SkipBinaryContent:
		return "binary content"
	default:
		return fmt.Sprintf("SkipReason(%d)", int(r))
	}
}

// Result is either a skip or the decoded text of the file
type Result struct {
	Text string
	Skip SkipReason
}

// Skipped reports whether the file should not be scanned
func (r Result) Skipped() bool {
	return r.Skip != SkipNone
}

// Classify applies the extension check and, when needed, reads up to
// maxBytes+1 bytes of the file. Files over maxBytes are skipped outright.
// Errors are only returned for I/O failures.
func Classify(path string, maxBytes int64) (Result, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if IsBinaryExtension(ext) {
		return Result{Skip: SkipBinaryExtension}, nil
	}

	data, tooLarge, err := readCapped(path, maxBytes)
	if err != nil {
		return Result{}, err
	}
	if tooLarge {
		return Result{Skip: SkipTooLarge}, nil
	}

	if IsTextExtension(ext) {
		text, err := decode(data, charsetOf(mimetype.Detect(data)))
		if err != nil {
			return Result{}, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return Result{Text: text}, nil
	}

	text, ok := DetectEncoding(data)
	if !ok {
		return Result{Skip: SkipBinaryContent}, nil
	}
	return Result{Text: text}, nil
}

// DetectEncoding sniffs raw bytes and decodes them with the best matching
// charset. ok is false when the content does not look like text.
func DetectEncoding(data []byte) (string, bool) {
	mtype := mimetype.Detect(data)
	if !isText(mtype) {
		return "", false
	}
	text, err := decode(data, charsetOf(mtype))
	if err != nil {
		return "", false
	}
	return text, true
}

// readCapped reads at most maxBytes+1 bytes; tooLarge is set when the extra
// byte was available
func readCapped(path string, maxBytes int64) ([]byte, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, true, nil
	}
	return data, false, nil
}

// isText walks the detected type and its ancestors looking for text/plain;
// structured formats such as JSON, XML and HTML descend from it.
func isText(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// charsetOf extracts the charset parameter of a detected type, if any
func charsetOf(mtype *mimetype.MIME) string {
	_, params, err := mime.ParseMediaType(mtype.String())
	if err != nil {
		return ""
	}
	return params["charset"]
}

// decode converts data from the named charset to UTF-8. Unknown or empty names
// fall back to UTF-8. A leading BOM is consumed and invalid sequences become
// U+FFFD.
func decode(data []byte, charset string) (string, error) {
	var enc encoding.Encoding = unicode.UTF8
	if charset != "" {
		if e, err := htmlindex.Get(charset); err == nil {
			enc = e
		}
	}

	if enc == unicode.UTF8 && utf8.Valid(data) && !hasUTF8BOM(data) {
		return string(data), nil
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(enc.NewDecoder()), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func hasUTF8BOM(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF
}
