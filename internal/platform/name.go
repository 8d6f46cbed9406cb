package platform

// ExeSuffix returns ".exe" for windows targets and "" otherwise.
func ExeSuffix(t Target) string {
	if t.IsWindows() {
		return ".exe"
	}
	return ""
}

// ArtifactName returns the canonical filename of the artifact built for t:
// <base>-<platform>-<arch>, plus ".exe" on windows. The launcher and the build
// orchestrator both go through this function so their names always match.
func ArtifactName(base string, t Target) string {
	return base + "-" + t.Platform + "-" + t.Arch + ExeSuffix(t)
}

// ResolveArtifactName identifies the target for the raw OS/CPU pair and
// returns its artifact name. It returns false for unsupported pairs.
func ResolveArtifactName(base, rawOS, rawArch string) (string, bool) {
	t, ok := Identify(rawOS, rawArch)
	if !ok {
		return "", false
	}
	return ArtifactName(base, t), true
}
