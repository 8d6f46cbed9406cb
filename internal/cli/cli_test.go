package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/palette-themify/themify-dist/internal/platform"
)

// currentArtifact returns the artifact path for the running platform inside
// a fresh binaries directory exported through THEMIFY_BINARIES_DIR.
func currentArtifact(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script artifacts require a POSIX shell")
	}
	target, ok := platform.Current()
	if !ok {
		t.Skipf("%s/%s has no release target", runtime.GOOS, runtime.GOARCH)
	}
	dir := t.TempDir()
	t.Setenv("THEMIFY_BINARIES_DIR", dir)
	return filepath.Join(dir, platform.ArtifactName("themify", target))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{&ExitError{Code: 3}, 3},
		{errors.New("boom"), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestLauncherForwardsEverything(t *testing.T) {
	artifact := currentArtifact(t)
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > '" + argsFile + "'\nexit 3\n"
	if err := os.WriteFile(artifact, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	err := ExecuteLauncher([]string{"--flag", "value", "--help"})
	if got := ExitCode(err); got != 3 {
		t.Fatalf("exit code = %d, want 3 (err: %v)", got, err)
	}

	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "--flag\nvalue\n--help\n" {
		t.Errorf("child received %q", got)
	}
}

func TestLauncherForwardsCompletionRequest(t *testing.T) {
	artifact := currentArtifact(t)
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > '" + argsFile + "'\n"
	if err := os.WriteFile(artifact, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	if err := ExecuteLauncher([]string{"__complete", "th"}); err != nil {
		t.Fatalf("ExecuteLauncher returned %v", err)
	}
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "__complete\nth\n" {
		t.Errorf("child received %q", got)
	}
}

func TestLauncherSuccess(t *testing.T) {
	artifact := currentArtifact(t)
	if err := os.WriteFile(artifact, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := ExecuteLauncher(nil); err != nil {
		t.Errorf("ExecuteLauncher returned %v, want nil", err)
	}
}

func TestLauncherMissingBinary(t *testing.T) {
	currentArtifact(t)

	if got := ExitCode(ExecuteLauncher([]string{"palette"})); got != 1 {
		t.Errorf("exit code = %d, want 1", got)
	}
}

func TestPostinstallMakesExecutable(t *testing.T) {
	artifact := currentArtifact(t)
	if err := os.WriteFile(artifact, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	cmd := NewPostinstallCommand(BuildInfo{Version: "test"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("postinstall returned %v", err)
	}

	info, err := os.Stat(artifact)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("owner execute bit not set: %o", info.Mode().Perm())
	}
	if !strings.HasPrefix(stdout.String(), "Made themify-") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestPostinstallMissingBinary(t *testing.T) {
	currentArtifact(t)

	var stdout, stderr bytes.Buffer
	cmd := NewPostinstallCommand(BuildInfo{Version: "test"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("postinstall returned %v", err)
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("expected silence, got stdout=%q stderr=%q", stdout.String(), stderr.String())
	}
}

// writeFakeZig installs a toolchain that fails for windows triples and
// otherwise drops a binary into zig-out/bin.
func writeFakeZig(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain requires a POSIX shell")
	}
	script := `#!/bin/sh
if [ "$1" = "version" ]; then
  echo 0.13.0
  exit 0
fi
case "$3" in
  *windows*) echo "unsupported target" >&2; exit 1 ;;
esac
mkdir -p zig-out/bin
echo "$3" > zig-out/bin/themify
`
	path := filepath.Join(t.TempDir(), "zig")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func runBuildCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewBuildCommand(BuildInfo{Version: "test"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBuildCommand(t *testing.T) {
	zig := writeFakeZig(t)
	root := t.TempDir()

	stdout, stderr, err := runBuildCommand(t, "--project-root", root, "--toolchain", zig)
	if err != nil {
		t.Fatalf("build returned %v (stderr: %s)", err, stderr)
	}

	for _, want := range []string{"Success: 4/6", "Failed: 2/6", "    - windows-x86_64\n    - windows-aarch64\n", "Binaries are in: " + filepath.Join(root, "binaries")} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	entries, err := os.ReadDir(filepath.Join(root, "binaries"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("binaries dir has %d entries, want 4", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(root, "binaries", "themify-macos-aarch64"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "-Dtarget=aarch64-macos" {
		t.Errorf("macos-aarch64 artifact built with %q", got)
	}
}

func TestBuildCommandMatrixFile(t *testing.T) {
	zig := writeFakeZig(t)
	root := t.TempDir()
	matrix := "targets:\n  - {platform: linux, arch: aarch64, triple: aarch64-linux-musl}\n"
	if err := os.WriteFile(filepath.Join(root, "build-matrix.yaml"), []byte(matrix), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runBuildCommand(t, "--project-root", root, "--toolchain", zig, "--matrix-file", "build-matrix.yaml", "--binaries-dir", "out")
	if err != nil {
		t.Fatalf("build returned %v", err)
	}
	if !strings.Contains(stdout, "Success: 1/1") {
		t.Errorf("stdout:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(root, "out", "themify-linux-aarch64")); err != nil {
		t.Errorf("expected artifact in --binaries-dir: %v", err)
	}
}

func TestBuildCommandInvalidMatrixFile(t *testing.T) {
	zig := writeFakeZig(t)
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "bad.yaml"), []byte("targets: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runBuildCommand(t, "--project-root", root, "--toolchain", zig, "--matrix-file", "bad.yaml")
	if err == nil {
		t.Fatal("expected error for an invalid matrix file")
	}
	if _, statErr := os.Stat(filepath.Join(root, "binaries")); !os.IsNotExist(statErr) {
		t.Error("binaries dir created despite invalid matrix")
	}
}

func TestBuildCommandToolchainTooOld(t *testing.T) {
	zig := writeFakeZig(t)
	root := t.TempDir()

	_, _, err := runBuildCommand(t, "--project-root", root, "--toolchain", zig, "--min-toolchain-version", "0.14.0")
	if err == nil || !strings.Contains(err.Error(), "older than the required") {
		t.Fatalf("err = %v, want toolchain version error", err)
	}

	if _, _, err := runBuildCommand(t, "--project-root", root, "--toolchain", zig, "--min-toolchain-version", "0.12.0"); err != nil {
		t.Errorf("build with satisfied minimum returned %v", err)
	}
}

func TestBuildCommandRejectsArgs(t *testing.T) {
	if _, _, err := runBuildCommand(t, "extra"); err == nil {
		t.Error("expected error for positional arguments")
	}
}
