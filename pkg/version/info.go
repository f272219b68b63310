package version

import "fmt"

var (
	// Build Time Injected information
	Version    string
	CommitHash string
	BuildTime  string
	OS         string
	Arch       string
	Branch     string
)

// GetVersion returns the version information in a human consumable way. This is intended to be used
// when the user requests the version information or in the case of the User-Agent.
func GetVersion() string {
	if Version == "" {
		return "development"
	}
	return makeVersionString(Version, CommitHash, OS, Arch, Branch)
}

func makeVersionString(version, commitHash, os, arch, branch string) (versionString string) {
	versionString = version
	if commitHash != "" {
		versionString = fmt.Sprintf("%s(%s)", versionString, commitHash)
	}

	if branch != "" && branch != "main" && branch != "HEAD" {
		versionString = fmt.Sprintf("%s[%s]", versionString, branch)
	}

	if os != "" && arch != "" {
		versionString = fmt.Sprintf("%s/%s-%s", versionString, os, arch)
	} else if os != "" {
		versionString = fmt.Sprintf("%s/%s", versionString, os)
	}

	return versionString
}
