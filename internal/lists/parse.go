package lists

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

const adblockChars = "|^$@*!"

var hostsMarkers = []string{"0.0.0.0", "127.0.0.1"}

// ExtractDomain pulls a bare domain out of one line of a list.
// It understands plain domains, hosts files (0.0.0.0 example.com),
// adblock rules (||example.com^) and full URLs.
func ExtractDomain(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}

	var domain string
	if u, err := url.Parse(line); err == nil && u.Scheme != "" && u.Host != "" {
		domain = u.Hostname()
	} else {
		domain = line
		if rule, ok := strings.CutPrefix(domain, "||"); ok {
			// ||example.com^$third-party
			domain, _, _ = strings.Cut(rule, "^")
		}
		domain = trimHostsMarker(domain)
		domain = strings.TrimSuffix(domain, "^")
		domain = strings.TrimSpace(domain)
		// *.example.com blocks example.com and everything under it
		domain = strings.TrimPrefix(domain, "*.")
	}

	// paths & multi-field lines
	if strings.ContainsRune(domain, '/') || strings.ContainsFunc(domain, unicode.IsSpace) {
		return "", false
	}

	// leftover adblock syntax: exceptions, inner wildcards, modifiers
	if strings.ContainsAny(domain, adblockChars) {
		return "", false
	}

	// ipv6 literals & host:port
	if !strings.Contains(domain, ".") || strings.Contains(domain, ":") {
		return "", false
	}

	if !isASCII(domain) {
		// raw punycode only: no case folding, no hostname rules
		ascii, err := idna.Punycode.ToASCII(domain)
		if err != nil {
			return "", false
		}
		domain = ascii
	}

	return domain, true
}

// ExtractDomains runs ExtractDomain over every line of content.
func ExtractDomains(content []byte) []string {
	lines := strings.Split(string(content), "\n")

	domains := make([]string, 0, len(lines))
	for _, line := range lines {
		if domain, ok := ExtractDomain(line); ok {
			domains = append(domains, domain)
		}
	}

	return domains
}

func trimHostsMarker(line string) string {
	for _, marker := range hostsMarkers {
		rest, ok := strings.CutPrefix(line, marker)
		if !ok || rest == "" {
			continue
		}

		r, _ := utf8.DecodeRuneInString(rest)
		if unicode.IsSpace(r) {
			return strings.TrimSpace(rest)
		}
	}

	return line
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
