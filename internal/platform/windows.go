package platform

// getWindowsInfo returns platform-specific information for Windows
func getWindowsInfo(homeDir string) *Info {
	return &Info{
		OS:              Windows,
		HomeDir:         homeDir,
		ReservedChars:   `<>:"/\|?*` + "\x00",
		CaseInsensitive: true,
	}
}
