// Package path models URL paths as ordered sequences of decoded segments.
package path

import (
	"slices"
	"strings"

	"urllib/lib/ds/stack"
	"urllib/percent"

	"github.com/pkg/errors"
)

// ErrInvalidPath reports a segment that cannot be percent-decoded. Future
// segment-content rules would report through it as well.
var ErrInvalidPath = errors.New("invalid path")

// Path is an ordered list of decoded segments plus a rooted flag. The zero
// Path is the empty path. After construction no segment is "." or "..".
type Path struct {
	segments []string
	rooted   bool
}

func Empty() Path { return Path{} }

// Of builds a Path from splittable segments: each argument may contain '/'
// and is split on it first, so pre-split slices and slash-joined strings
// are interchangeable. Segments are percent-decoded, so already-encoded
// input round-trips unchanged through String. Dot segments are resolved per
// RFC 3986 section 5.2.4: "." is dropped and ".." removes the previous
// retained segment, doing nothing at the root.
func Of(splittable ...string) (Path, error) {
	rooted := len(splittable) > 0 && strings.HasPrefix(splittable[0], "/")

	var raws []string
	for _, s := range splittable {
		raws = append(raws, strings.Split(s, "/")...)
	}
	if rooted {
		// Drop the empty segment in front of the leading '/'.
		raws = raws[1:]
	}

	out := stack.New[string](uint(len(raws)))
	for _, raw := range raws {
		segment, err := percent.Decode(raw)
		if err != nil {
			return Path{}, errors.Wrapf(ErrInvalidPath, "decoding segment %q: %v", raw, err)
		}

		switch segment {
		case ".":
		case "..":
			out.Pop()
		default:
			out.Push(segment)
		}
	}

	return Path{segments: out.Data(), rooted: rooted}, nil
}

// Segments returns a copy of the decoded segments.
func (p Path) Segments() []string {
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

func (p Path) IsEmpty() bool { return len(p.segments) == 0 }

// Rooted reports whether the path was built with a leading '/'.
func (p Path) Rooted() bool { return p.rooted }

// String returns the encoded form: segments joined with '/', prefixed with
// '/' when the path is non-empty or rooted. The empty unrooted path is "".
func (p Path) String() string {
	if p.IsEmpty() {
		if p.rooted {
			return "/"
		}
		return ""
	}

	b := new(strings.Builder)
	for _, segment := range p.segments {
		b.WriteByte('/')
		b.WriteString(percent.Encode(segment, percent.Segment))
	}
	return b.String()
}

func (p Path) Equal(o Path) bool {
	return p.rooted == o.rooted && slices.Equal(p.segments, o.segments)
}
