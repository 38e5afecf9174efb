// Package whitelist normalizes site domains and matches page hostnames
// against the list of sites where the custom font must not be applied.
package whitelist

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"github.com/tsawler/fontpref/logging"
)

var (
	// ErrEmptyDomain is returned for blank input.
	ErrEmptyDomain = errors.New("whitelist: empty domain")

	// ErrInvalidDomain is returned when input does not reduce to a
	// dotted host name.
	ErrInvalidDomain = errors.New("whitelist: invalid domain format")

	// ErrPublicSuffix is returned for bare public suffixes such as "co.uk",
	// which would match every site registered under them.
	ErrPublicSuffix = errors.New("whitelist: domain is a public suffix")
)

var (
	schemePattern = regexp.MustCompile(`(?i)^https?://`)
	wwwPattern    = regexp.MustCompile(`(?i)^www\.`)
	domainPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*(\.[a-z0-9][a-z0-9-]*)+$`)
)

// ExtractDomain reduces user input to a host name. Input that starts with
// neither a http(s) scheme nor "www." is only trimmed and lower-cased.
// Anything else is parsed as a URL and its host is returned without a
// leading "www.". Unparseable URLs fall back to the trimmed, lower-cased
// input.
func ExtractDomain(input string) string {
	input = strings.TrimSpace(input)
	if !schemePattern.MatchString(input) && !wwwPattern.MatchString(input) {
		return strings.ToLower(input)
	}

	raw := input
	if !schemePattern.MatchString(raw) {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		logging.Logger().Debug("could not parse whitelist input as URL", "input", input, "error", err)
		return strings.ToLower(input)
	}

	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// Validate checks that domain is a lower-case ASCII host name with at least
// two labels and is not a public suffix on its own.
func Validate(domain string) error {
	if !domainPattern.MatchString(domain) {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	if suffix, icann := publicsuffix.PublicSuffix(domain); icann && suffix == domain {
		return fmt.Errorf("%w: %q", ErrPublicSuffix, domain)
	}
	return nil
}

// Normalize turns user input (a domain or URL) into the form stored in the
// whitelist. Internationalized names are converted to their ASCII form.
func Normalize(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyDomain
	}

	domain := ExtractDomain(input)

	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDomain, domain, err)
	}

	if err := Validate(ascii); err != nil {
		return "", err
	}
	return ascii, nil
}

// Match reports whether hostname is one of domains or a subdomain of one.
// "mail.example.com" matches "example.com"; "notexample.com" does not.
func Match(domains []string, hostname string) bool {
	hostname = strings.ToLower(strings.TrimSuffix(hostname, "."))
	if hostname == "" {
		return false
	}

	for _, domain := range domains {
		if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
			return true
		}
	}
	return false
}

// RegistrableDomain returns the eTLD+1 of hostname, e.g. "example.co.uk"
// for "mail.example.co.uk". It is what a user would normally whitelist.
func RegistrableDomain(hostname string) (string, error) {
	return publicsuffix.EffectiveTLDPlusOne(strings.ToLower(hostname))
}
