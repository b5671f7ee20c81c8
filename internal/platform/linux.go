package platform

// getLinuxInfo returns platform-specific information for Linux
func getLinuxInfo(homeDir string) *Info {
	return &Info{
		OS:            Linux,
		HomeDir:       homeDir,
		ReservedChars: "/\x00",
	}
}
