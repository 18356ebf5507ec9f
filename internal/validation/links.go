package validation

import (
	"net/url"
	"strings"
)

// mapsSearchPrefix is the canonical Google Maps query-URL form the generator
// is instructed to produce for every activity slot.
const mapsSearchPrefix = "https://www.google.com/maps/search/?api=1&query="

// Known link-shortener hosts. The generator is told to return real
// destinations, not redirects, so any of these in an official link is suspect.
var shortenerHosts = map[string]bool{
	"goo.gl":          true,
	"maps.app.goo.gl": true,
	"bit.ly":          true,
	"tinyurl.com":     true,
	"t.co":            true,
	"ow.ly":           true,
}

// IsCanonicalMapsURL reports whether raw matches the canonical
// https://www.google.com/maps/search/?api=1&query=<encoded-location> form
// with a non-empty query.
func IsCanonicalMapsURL(raw string) bool {
	if !strings.HasPrefix(raw, mapsSearchPrefix) {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	q := u.Query()
	return q.Get("api") == "1" && q.Get("query") != ""
}

// IsShortenedURL reports whether raw points at a known link-shortener host.
func IsShortenedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return shortenerHosts[strings.ToLower(u.Hostname())]
}

// IsAbsoluteURL reports whether raw is an absolute http(s) URL.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
