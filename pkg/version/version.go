package version

import "runtime/debug"

// Version represents the current version of dbg
const Version = "0.3.1"

// BuildVersion returns the version string for display, with the VCS revision
// appended when the binary was built from a checkout.
func BuildVersion() string {
	v := "dbg version " + Version
	if rev := revision(); rev != "" {
		v += " (" + rev + ")"
	}
	return v
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
