package driven

import "net/url"

// Location is the addressable location of the gallery, e.g. the browser
// URL or a deep link handed to the terminal UI.
type Location interface {
	// Current returns a copy of the current location.
	Current() *url.URL

	// Replace swaps the current location without creating a history entry.
	Replace(u *url.URL)
}
