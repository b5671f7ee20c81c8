package platform

// getMacOSInfo returns platform-specific information for macOS.
// Finder shows ':' as '/', so both are rejected in folder names.
func getMacOSInfo(homeDir string) *Info {
	return &Info{
		OS:              MacOS,
		HomeDir:         homeDir,
		ReservedChars:   "/:\x00",
		CaseInsensitive: true,
	}
}
