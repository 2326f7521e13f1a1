// Package host classifies authority host strings into registered names and
// IP literals, and validates ports.
package host

import (
	"strconv"
	"strings"

	ipv4 "urllib/ip/v4"
	ipv6 "urllib/ip/v6"
	"urllib/percent"
	"urllib/rule"

	"github.com/pkg/errors"
)

var (
	ErrInvalidHost = errors.New("invalid host")
	ErrInvalidPort = errors.New("invalid port")
)

// PortUnspecified marks an authority without an explicit port, meaning the
// scheme default applies. It is internal-only: ValidatePort rejects every
// negative caller value.
const PortUnspecified = -1

type Kind uint

const (
	RegisteredName Kind = 1 + iota
	IPv4
	IPv6
)

// Host is one of a registered name, an IPv4 address, or an IPv6 address.
// The zero Host is invalid; Classify is the only constructor, so a Host in
// hand is always syntactically valid.
type Host struct {
	kind Kind

	name string // decoded registered name, caller case kept
	v4   ipv4.Addr
	v6   ipv6.Addr
}

// Classify parses raw into a Host. "[...]" is an IPv6 literal, a dotted
// quad is IPv4, anything else must be a valid registered name. IPv4 is
// tried before reg-name since its syntax is a strict subset of reg-name
// syntax. Registered names may arrive percent-encoded and are decoded
// before validation.
func Classify(raw string) (Host, error) {
	if strings.HasPrefix(raw, "[") {
		if !strings.HasSuffix(raw, "]") {
			return Host{}, errors.Wrap(ErrInvalidHost, "missing ']' on IP literal")
		}
		addr, err := ipv6.ParseAddr(raw[1 : len(raw)-1])
		if err != nil {
			return Host{}, errors.Wrapf(ErrInvalidHost, "parsing IPv6 literal: %v", err)
		}
		return Host{kind: IPv6, v6: addr}, nil
	}

	if addr, err := ipv4.ParseAddr(raw); err == nil {
		return Host{kind: IPv4, v4: addr}, nil
	}

	name, err := percent.Decode(raw)
	if err != nil {
		return Host{}, errors.Wrapf(ErrInvalidHost, "decoding registered name: %v", err)
	}
	if err := assertValidRegName(name); err != nil {
		return Host{}, errors.Wrapf(ErrInvalidHost, "%v", err)
	}

	return Host{kind: RegisteredName, name: name}, nil
}

func assertValidRegName(name string) error {
	if name == "" {
		return errors.New("host is empty")
	}

	labels := strings.Split(name, ".")

	// A numeric final label means the input was an address, and valid IPv4
	// literals were already taken before the reg-name fallback. This keeps
	// "999.1.1.1" a host error instead of a surprise hostname.
	if last := labels[len(labels)-1]; isAllDigits(last) {
		return errors.Errorf("name with numeric final label %q is not a valid IPv4 address", last)
	}

	for _, label := range labels {
		if label == "" {
			return errors.New("empty label")
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return errors.Errorf("label %q starts or ends with '-'", label)
		}
		for idx := 0; idx < len(label); idx++ {
			c := label[idx]
			if !(rule.IsAlpha(c) || rule.IsDigit(c) || c == '-') {
				return errors.Errorf("label %q contains invalid byte", label)
			}
		}
	}

	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for idx := 0; idx < len(s); idx++ {
		if !rule.IsDigit(s[idx]) {
			return false
		}
	}
	return true
}

func (h Host) Kind() Kind { return h.kind }

// Name returns the decoded registered name with the caller's case kept.
// It is empty for IP literals.
func (h Host) Name() string { return h.name }

func (h Host) IPv4() (ipv4.Addr, bool) { return h.v4, h.kind == IPv4 }
func (h Host) IPv6() (ipv6.Addr, bool) { return h.v6, h.kind == IPv6 }

// String returns the serialized host. Registered names are lowercased, and
// IPv6 literals come out bracketed in canonical form.
func (h Host) String() string {
	switch h.kind {
	case RegisteredName:
		return strings.ToLower(h.name)
	case IPv4:
		return h.v4.String()
	case IPv6:
		return "[" + h.v6.String() + "]"
	}
	return ""
}

// Equal compares hosts structurally. Registered names compare
// case-insensitively.
func (h Host) Equal(o Host) bool {
	if h.kind != o.kind {
		return false
	}
	switch h.kind {
	case RegisteredName:
		return strings.EqualFold(h.name, o.name)
	case IPv4:
		return h.v4 == o.v4
	case IPv6:
		return h.v6 == o.v6
	}
	return false
}

// ValidatePort range-checks a caller-supplied port.
func ValidatePort(port int) (int, error) {
	if port < 0 || port > 65535 {
		return 0, errors.Wrapf(ErrInvalidPort, "port out of range: %d", port)
	}
	return port, nil
}

// SplitAuthority splits "host[:port]" on the last ':' outside IPv6
// brackets. The port, if present, must be all-decimal and in range; without
// one the returned port is PortUnspecified.
func SplitAuthority(raw string) (Host, int, error) {
	hostPart, portPart := raw, ""

	if strings.HasPrefix(raw, "[") {
		idx := strings.LastIndex(raw, "]")
		if idx < 0 {
			return Host{}, 0, errors.Wrap(ErrInvalidHost, "missing ']' on IP literal")
		}
		hostPart, portPart = raw[:idx+1], raw[idx+1:]
		if portPart != "" && portPart[0] != ':' {
			return Host{}, 0, errors.Wrap(ErrInvalidHost, "junk after IP literal")
		}
	} else if idx := strings.LastIndex(raw, ":"); idx >= 0 {
		hostPart, portPart = raw[:idx], raw[idx:]
	}

	h, err := Classify(hostPart)
	if err != nil {
		return Host{}, 0, err
	}

	if portPart == "" {
		return h, PortUnspecified, nil
	}

	digits := portPart[1:] // strip ':'
	if digits == "" {
		return Host{}, 0, errors.Wrap(ErrInvalidHost, "empty port after ':'")
	}
	for idx := 0; idx < len(digits); idx++ {
		if !rule.IsDigit(digits[idx]) {
			return Host{}, 0, errors.Wrapf(ErrInvalidHost, "port is not decimal: %q", digits)
		}
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return Host{}, 0, errors.Wrapf(ErrInvalidPort, "port out of range: %q", digits)
	}
	port, err := ValidatePort(n)
	if err != nil {
		return Host{}, 0, err
	}

	return h, port, nil
}
