package analyzer

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"create-endpoint/internal/logger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile reads a route file as text.
// UTF-8 is tried first; otherwise each IANA charset name in encodings is tried in order and the
// first decoding that yields no replacement characters wins.
// Line comments are kept; use StripComments before pattern matching.
func ReadFile(path string, encodings []string) (string, error) {
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	rawBytes = bytes.TrimPrefix(rawBytes, utf8BOM)

	if utf8.Valid(rawBytes) {
		return string(rawBytes), nil
	}

	for _, name := range encodings {
		enc, err := lookupEncoding(name)
		if err != nil {
			logger.Debug("Skipping encoding %q: %v", name, err)
			continue
		}
		if enc == nil || enc == unicode.UTF8 {
			continue
		}

		decoded, _, err := transform.Bytes(enc.NewDecoder(), rawBytes)
		if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
			continue
		}

		logger.Debug("Decoded %s as %s", path, name)
		return string(decoded), nil
	}

	return "", fmt.Errorf("%s is not valid UTF-8 and no configured encoding (%s) decodes it",
		path, strings.Join(encodings, ", "))
}

// lookupEncoding resolves an IANA charset name such as "euc-kr" or "windows-1252".
// Unsupported but registered names return a nil encoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	return ianaindex.IANA.Encoding(strings.TrimSpace(name))
}

var (
	blockCommentRegex = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRegex  = regexp.MustCompile(`(?m)^[ \t]*//.*$`)
)

// StripComments removes block comments and whole-line // comments to prevent regex false
// positives. Trailing comments are left alone so URLs inside strings survive.
func StripComments(content string) string {
	content = blockCommentRegex.ReplaceAllString(content, "")
	return lineCommentRegex.ReplaceAllString(content, "")
}
