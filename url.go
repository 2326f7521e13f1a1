package urllib

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"urllib/host"
	"urllib/path"
	"urllib/query"

	"github.com/pkg/errors"
)

// Url is an immutable HTTP(S) URL. A built value never changes, so it is
// safe for unsynchronized concurrent reads.
type Url struct {
	scheme   Scheme
	host     host.Host
	port     int
	path     path.Path
	query    query.Query
	fragment string
}

// HTTP starts a builder for an http URL. hostport is "host[:port]"; an
// explicit port overrides the scheme default of 80.
func HTTP(hostport string) *Builder { return newBuilder(SchemeHTTP, hostport) }

// HTTPS starts a builder for an https URL. hostport is "host[:port]"; an
// explicit port overrides the scheme default of 443.
func HTTPS(hostport string) *Builder { return newBuilder(SchemeHTTPS, hostport) }

func newBuilder(scheme Scheme, hostport string) *Builder {
	b := &Builder{scheme: scheme, port: host.PortUnspecified}

	h, port, err := host.SplitAuthority(hostport)
	if err != nil {
		return b.fail(err)
	}

	b.host = h
	if port != host.PortUnspecified {
		b.port = port
	}
	return b
}

// Builder accumulates validated URL components. Validation is eager: every
// setter checks its input as it is supplied, and Build reports the first
// failure. Builders are single-use and not safe for concurrent use; the Url
// they produce is.
type Builder struct {
	scheme   Scheme
	host     host.Host
	port     int
	path     path.Path
	query    query.Query
	fragment string

	err error
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// Port sets an explicit port, overriding the scheme default.
func (b *Builder) Port(port int) *Builder {
	p, err := host.ValidatePort(port)
	if err != nil {
		return b.fail(err)
	}
	b.port = p
	return b
}

// Path replaces the path. Segments may contain '/' and are split on it
// first, so b.Path("a/b") and b.Path("a", "b") are the same.
func (b *Builder) Path(segments ...string) *Builder {
	p, err := path.Of(segments...)
	if err != nil {
		return b.fail(err)
	}
	b.path = p
	return b
}

// Query appends one key/value pair. Call order is kept on the wire.
func (b *Builder) Query(key, value string) *Builder {
	b.query = b.query.Append(key, value)
	return b
}

// QueryPairs replaces the query with the given pairs, keeping their order.
func (b *Builder) QueryPairs(pairs ...query.Pair) *Builder {
	b.query = query.Create(pairs...)
	return b
}

// QueryMap replaces the query with the map's pairs in sorted key order,
// keeping serialization deterministic. Use Query or QueryPairs when
// insertion order matters.
func (b *Builder) QueryMap(m map[string]string) *Builder {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	pairs := make([]query.Pair, len(keys))
	for idx, key := range keys {
		pairs[idx] = query.Pair{Key: key, Value: m[key]}
	}
	b.query = query.Create(pairs...)
	return b
}

// Fragment sets the fragment, kept and serialized verbatim.
func (b *Builder) Fragment(fragment string) *Builder {
	b.fragment = fragment
	return b
}

// Build returns the immutable Url, or the first validation error the chain
// hit.
func (b *Builder) Build() (Url, error) {
	if b.err != nil {
		return Url{}, errors.WithMessage(b.err, "building url")
	}

	port := b.port
	if port == host.PortUnspecified {
		port = b.scheme.DefaultPort()
	}

	return Url{
		scheme:   b.scheme,
		host:     b.host,
		port:     port,
		path:     b.path,
		query:    b.query,
		fragment: b.fragment,
	}, nil
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.1
func (u Url) Scheme() Scheme { return u.scheme }

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.2
func (u Url) Host() host.Host { return u.host }

// Port returns the explicit port, or the scheme default when none was
// given.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.3
func (u Url) Port() int { return u.port }

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.3
func (u Url) Path() path.Path { return u.path }

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.4
func (u Url) Query() query.Query { return u.query }

// Fragment returns the fragment, not encoded.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.5
func (u Url) Fragment() string { return u.fragment }

// Equal compares all five components structurally. Registered-name hosts
// compare case-insensitively, query pairs in order.
func (u Url) Equal(o Url) bool {
	return u.scheme == o.scheme &&
		u.port == o.port &&
		u.host.Equal(o.host) &&
		u.path.Equal(o.path) &&
		u.query.Equal(o.query) &&
		u.fragment == o.fragment
}

// String returns the wire form scheme://host[:port][/path][?query][#frag].
// The port is omitted when it equals the scheme default. The fragment is
// written verbatim, a deliberate deviation from RFC 3986 section 3.5
// encoding; see Fragment.
func (u Url) String() string {
	b := new(strings.Builder)
	b.WriteString(u.scheme.String())
	b.WriteString("://")
	b.WriteString(u.host.String())

	if u.port != u.scheme.DefaultPort() {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.port))
	}

	b.WriteString(u.path.String())

	if !u.query.IsEmpty() {
		b.WriteByte('?')
		b.WriteString(u.query.String())
	}
	if u.fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}

	return b.String()
}

// ToURL converts to net/url by parsing the wire form, which round-trips
// since String always yields a valid absolute URL.
func (u Url) ToURL() (*url.URL, error) {
	parsed, err := url.Parse(u.String())
	if err != nil {
		return nil, errors.Wrap(err, "parsing wire form")
	}
	return parsed, nil
}
