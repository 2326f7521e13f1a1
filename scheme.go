package urllib

// Scheme is the closed set of supported URL schemes.
type Scheme uint

const (
	SchemeHTTP Scheme = 1 + iota
	SchemeHTTPS
)

func (s Scheme) String() string {
	switch s {
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	}
	return ""
}

// DefaultPort returns the port implied when the authority carries none.
func (s Scheme) DefaultPort() int {
	switch s {
	case SchemeHTTP:
		return 80
	case SchemeHTTPS:
		return 443
	}
	return 0
}
