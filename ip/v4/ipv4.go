package ipv4

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Addr is an IPv4 address in network byte order.
type Addr [4]byte

// ParseAddr parses a dotted-quad literal. Octets must be decimal, in range
// [0, 255], and carry no leading zero ("01" is rejected, "0" is fine).
func ParseAddr(s string) (Addr, error) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return Addr{}, errors.New("address is not four dot-seperated octets")
	}

	var addr Addr
	for idx, octet := range octets {
		n, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return Addr{}, errors.Wrap(err, "failed to parse octet")
		}

		if octet[0] == '0' && !(n == 0 && len(octet) == 1) {
			// '00', '01'
			return Addr{}, errors.New("leading zero is not allowed in octet")
		}
		addr[idx] = byte(n)
	}

	return addr, nil
}

func (a Addr) ToUint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

// String returns the dotted-quad form.
func (a Addr) String() string {
	b := new(strings.Builder)
	for idx, octet := range a {
		if idx > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(uint64(octet), 10))
	}
	return b.String()
}
