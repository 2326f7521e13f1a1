// Package urllib builds immutable HTTP and HTTPS URLs whose wire form is
// always valid per RFC 3986.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986
package urllib
