package shared

import (
	mapset "github.com/deckarep/golang-set"
)

// Browsers that can be driven through a local driver service.
const (
	ChromeBrowser  = "chrome"
	FirefoxBrowser = "firefox"
)

var supportedBrowsers mapset.Set

func init() {
	supportedBrowsers = NewStringSet(ChromeBrowser, FirefoxBrowser)
}

// GetBrowserNames returns an alphabetically-ordered array of the supported
// browser names.
func GetBrowserNames() []string {
	return SortedStrings(supportedBrowsers)
}

// IsBrowserName determines whether the given name string is a supported
// browser name. Used for validating --browser values.
func IsBrowserName(name string) bool {
	return supportedBrowsers.Contains(name)
}
