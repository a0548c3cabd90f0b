package version

// version is overridden at build time with
// -ldflags "-X chartmenu/internal/version.version=v1.2.3"
var version = "dev"

// GetVersion returns the semver string of the version
func GetVersion() string {
	return version
}

// GetUserAgent returns a user agent for user with an HTTP client
func GetUserAgent() string {
	return "chartmenu/" + version
}
