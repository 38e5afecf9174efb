package whitelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"example.com", "example.com"},
		{"  Example.COM  ", "example.com"},
		{"https://www.example.com/path?q=1", "example.com"},
		{"http://mail.example.com", "mail.example.com"},
		{"HTTPS://Docs.Example.com:8443/x", "docs.example.com"},
		{"www.github.com", "github.com"},
		{"WWW.GitHub.com/tsawler", "github.com"},
		{"sub.www.example.com", "sub.www.example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractDomain(tt.input), "ExtractDomain(%q)", tt.input)
	}
}

func TestValidate(t *testing.T) {
	valid := []string{"example.com", "a-b.example.co.uk", "xn--bcher-kva.example", "1password.com"}
	for _, d := range valid {
		assert.NoError(t, Validate(d), d)
	}

	invalid := []string{"localhost", "-bad.com", "exa mple.com", "example..com", "Example.com", ""}
	for _, d := range invalid {
		assert.ErrorIs(t, Validate(d), ErrInvalidDomain, d)
	}

	assert.ErrorIs(t, Validate("co.uk"), ErrPublicSuffix)
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("https://www.Bücher.example/shop")
	require.NoError(t, err)
	assert.Equal(t, "xn--bcher-kva.example", got)

	got, err = Normalize("docs.github.com")
	require.NoError(t, err)
	assert.Equal(t, "docs.github.com", got)

	_, err = Normalize("   ")
	assert.ErrorIs(t, err, ErrEmptyDomain)

	_, err = Normalize("not a domain")
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestMatch(t *testing.T) {
	domains := []string{"example.com", "github.io"}

	tests := []struct {
		hostname string
		want     bool
	}{
		{"example.com", true},
		{"mail.example.com", true},
		{"a.b.example.com", true},
		{"EXAMPLE.com", true},
		{"example.com.", true},
		{"notexample.com", false},
		{"example.com.evil.net", false},
		{"tsawler.github.io", true},
		{"github.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(domains, tt.hostname), "Match(%q)", tt.hostname)
	}

	assert.False(t, Match(nil, "example.com"))
}

func TestRegistrableDomain(t *testing.T) {
	got, err := RegistrableDomain("mail.example.co.uk")
	require.NoError(t, err)
	assert.Equal(t, "example.co.uk", got)

	_, err = RegistrableDomain("co.uk")
	assert.Error(t, err)
}
