package urllib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "http", SchemeHTTP.String())
	assert.Equal(t, "https", SchemeHTTPS.String())
	assert.Equal(t, "", Scheme(0).String())
}

func TestSchemeDefaultPort(t *testing.T) {
	assert.Equal(t, 80, SchemeHTTP.DefaultPort())
	assert.Equal(t, 443, SchemeHTTPS.DefaultPort())
	assert.Equal(t, 0, Scheme(0).DefaultPort())
}
