package ipv6

import (
	"strconv"
	"strings"

	ipv4 "urllib/ip/v4"

	"github.com/pkg/errors"
)

// Addr is an IPv6 address in network byte order.
type Addr [16]byte

// ParseAddr parses an IPv6 literal without brackets. Groups are 1-4 hex
// digits, at most one "::" compresses a run of zero groups, and the last 32
// bits may be written as an embedded IPv4 address ("::ffff:192.0.2.1").
func ParseAddr(s string) (Addr, error) {
	before, after, found := strings.Cut(s, "::")
	var addr Addr

	if !found {
		// Two colons not found. parse the whole string.
		addrBytes, err := parseAddrFrag(before, true)
		if err != nil {
			return Addr{}, err
		}
		if len(addrBytes) != 16 {
			return Addr{}, errors.New("length of address is not 128bit")
		}

		copy(addr[:], addrBytes)

		return addr, nil
	}

	// Two colons found. parse each of them and combine them.
	frag1, err1 := parseAddrFrag(before, false)
	frag2, err2 := parseAddrFrag(after, true)
	if err1 != nil || err2 != nil {
		if err1 != nil {
			return Addr{}, errors.Wrap(err1, "parsing fragment before ::")
		}
		return Addr{}, errors.Wrap(err2, "parsing fragment after ::")
	}

	if len(frag1)+len(frag2) > 14 {
		// "::" must cover at least one group.
		return Addr{}, errors.New("ipv6 address too long")
	}

	// copy first len(frag1) bytes.
	copy(addr[:len(frag1)], frag1)
	// copy last len(frag2) bytes.
	copy(addr[len(addr)-len(frag2):], frag2)

	return addr, nil
}

func parseAddrFrag(s string, isLast bool) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	h16s := strings.Split(s, ":")

	addr := make([]byte, len(h16s)*2)
	for idx, h16 := range h16s {
		if h16 == "" {
			// 0:::, 0::0::
			return nil, errors.New("invalid use of colon seperator")
		}
		if len(h16) > 4 && !strings.Contains(h16, ".") {
			return nil, errors.New("group longer than 4 hex digits")
		}

		n, err := strconv.ParseUint(h16, 16, 16)
		if err != nil {
			if !isLast || idx != len(h16s)-1 {
				// If it is not the last element of the whole address
				return nil, errors.Wrap(err, "failed to parse hex")
			}
			// It might be IPv4 address
			addrV4, err := ipv4.ParseAddr(h16)
			if err != nil {
				return nil, errors.Wrap(err,
					"non-hex item found on the last index, but wasn't ipv4 address",
				)
			}

			// The embedded IPv4 covers the last two groups.
			return append(addr[:idx*2], addrV4[:]...), nil
		}

		nIdx := idx * 2
		addr[nIdx] = byte(n >> 8)
		addr[nIdx+1] = byte(n & 0xFF)
	}

	return addr, nil
}

// String returns the canonical form from RFC 5952: lowercase hex, leading
// zeros dropped, and the leftmost longest run of two or more zero groups
// compressed to "::".
func (a Addr) String() string {
	var groups [8]uint16
	for idx := range groups {
		groups[idx] = uint16(a[idx*2])<<8 | uint16(a[idx*2+1])
	}

	best, bestLen := -1, 1
	for idx := 0; idx < len(groups); {
		if groups[idx] != 0 {
			idx++
			continue
		}
		start := idx
		for idx < len(groups) && groups[idx] == 0 {
			idx++
		}
		if idx-start > bestLen {
			best, bestLen = start, idx-start
		}
	}

	b := new(strings.Builder)
	for idx := 0; idx < len(groups); idx++ {
		if idx == best {
			b.WriteString("::")
			idx += bestLen - 1
			continue
		}
		if idx > 0 && idx != best+bestLen {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(groups[idx]), 16))
	}

	return b.String()
}
