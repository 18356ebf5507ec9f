package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCanonicalMapsURL(t *testing.T) {
	assert.True(t, IsCanonicalMapsURL("https://www.google.com/maps/search/?api=1&query=Fort+Kochi"))
	assert.True(t, IsCanonicalMapsURL("https://www.google.com/maps/search/?api=1&query=Eiffel%20Tower"))

	assert.False(t, IsCanonicalMapsURL(""))
	assert.False(t, IsCanonicalMapsURL("https://www.google.com/maps/search/?api=1&query="))
	assert.False(t, IsCanonicalMapsURL("https://goo.gl/maps/abc123"))
	assert.False(t, IsCanonicalMapsURL("https://maps.app.goo.gl/xyz"))
	assert.False(t, IsCanonicalMapsURL("https://www.google.com/maps/place/Fort+Kochi"))
}

func TestIsShortenedURL(t *testing.T) {
	assert.True(t, IsShortenedURL("https://goo.gl/maps/abc123"))
	assert.True(t, IsShortenedURL("https://maps.app.goo.gl/xyz"))
	assert.True(t, IsShortenedURL("https://bit.ly/3xYzAbc"))
	assert.True(t, IsShortenedURL("https://TinyURL.com/abc"))

	assert.False(t, IsShortenedURL("https://www.louvre.fr"))
	assert.False(t, IsShortenedURL(""))
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://www.louvre.fr/en/visit"))
	assert.True(t, IsAbsoluteURL("http://example.com"))

	assert.False(t, IsAbsoluteURL("/tickets"))
	assert.False(t, IsAbsoluteURL("www.louvre.fr"))
	assert.False(t, IsAbsoluteURL("ftp://example.com/file"))
}
