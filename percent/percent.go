// Package percent implements RFC 3986 percent-encoding against named
// per-component allowed-character sets.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986#section-2.1
package percent

import (
	"strings"
	"unicode/utf8"

	"urllib/rule"

	"github.com/pkg/errors"
)

// ErrMalformedEncoding reports a '%' not followed by two hex digits, or
// decoded text that is not valid UTF-8.
var ErrMalformedEncoding = errors.New("malformed percent encoding")

// Codec selects the set of bytes a component may carry unescaped.
type Codec uint

const (
	// Unreserved allows only the RFC 3986 unreserved set.
	Unreserved Codec = 1 + iota
	// Segment allows pchar: unreserved, sub-delims, ':' and '@'.
	Segment
	// QueryComponent allows the query set except the structural '&' and '='.
	QueryComponent
)

func hex(c byte) (h [2]byte) {
	const hexSet = "0123456789ABCDEF"
	h[0] = hexSet[c>>4]
	h[1] = hexSet[c&0xF]
	return
}

func unhex(h [2]byte) (c byte) {
	return hexToNum(h[0])<<4 | hexToNum(h[1])
}

func hexToNum(h byte) byte {
	switch {
	case '0' <= h && h <= '9':
		return h - '0'
	case 'a' <= h && h <= 'f':
		return h - 'a' + 10
	case 'A' <= h && h <= 'F':
		return h - 'A' + 10
	}
	return 0
}

func shouldEscape(c byte, codec Codec) bool {
	if c >= utf8.RuneSelf {
		// Non-ASCII bytes are never allowed raw.
		return true
	}
	if rule.IsUnreserved(c) {
		return false
	}

	switch codec {
	case Segment:
		// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.3
		return !(rule.IsSubDelim(c) || c == ':' || c == '@')
	case QueryComponent:
		// '&' and '=' separate pairs and keys, so they are always escaped.
		// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.4
		if c == '&' || c == '=' {
			return true
		}
		return !(rule.IsSubDelim(c) || c == ':' || c == '@' || c == '/' || c == '?')
	}

	return true
}

// Encode escapes every byte of s that codec does not allow as uppercase
// "%XX". Multi-byte runes come through as their UTF-8 bytes, each escaped.
func Encode(s string, codec Codec) string {
	b := new(strings.Builder)
	b.Grow(len(s))

	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if shouldEscape(c, codec) {
			h := hex(c)
			b.Write([]byte{'%', h[0], h[1]})
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}

// DecodeBytes reverses "%XX" escapes and passes other bytes through.
func DecodeBytes(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))

	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		if c == '%' {
			if idx+2 >= len(s) || !rule.IsPercentEncoded(s[idx:idx+3]) {
				bad := s[idx:min(len(s), idx+3)]
				return nil, errors.Wrapf(ErrMalformedEncoding, "bad escape %q", bad)
			}
			out = append(out, unhex([2]byte{s[idx+1], s[idx+2]}))
			idx += 2
			continue
		}
		out = append(out, c)
	}

	return out, nil
}

// Decode is DecodeBytes with the result checked to be valid UTF-8 text.
func Decode(s string) (string, error) {
	raw, err := DecodeBytes(s)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errors.Wrap(ErrMalformedEncoding, "decoded bytes are not valid UTF-8")
	}
	return string(raw), nil
}
