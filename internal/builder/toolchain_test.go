package builder

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/palette-themify/themify-dist/internal/platform"
)

// writeFakeZig installs a shell script standing in for the zig toolchain.
func writeFakeZig(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "zig")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestZigToolchainBuild(t *testing.T) {
	root := t.TempDir()
	bin := writeFakeZig(t, `echo "args: $*"
mkdir -p zig-out/bin
echo built > zig-out/bin/themify
`)

	var stdout bytes.Buffer
	z := &ZigToolchain{Bin: bin, ProjectRoot: root, Optimize: "ReleaseFast", BaseName: "themify", Stdout: &stdout}
	e := Entry{Target: platform.Target{Platform: platform.Linux, Arch: platform.AArch64}, Triple: "aarch64-linux"}

	if err := z.Build(context.Background(), e); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := stdout.String(); got != "args: build -Doptimize=ReleaseFast -Dtarget=aarch64-linux\n" {
		t.Errorf("toolchain saw %q", got)
	}
	if _, err := os.Stat(z.OutputPath(e)); err != nil {
		t.Errorf("expected output at %s: %v", z.OutputPath(e), err)
	}
}

func TestZigToolchainBuildFailure(t *testing.T) {
	bin := writeFakeZig(t, "echo 'error: linker failed' >&2\nexit 2\n")

	var stderr bytes.Buffer
	z := &ZigToolchain{Bin: bin, ProjectRoot: t.TempDir(), Optimize: "ReleaseFast", BaseName: "themify", Stdout: &bytes.Buffer{}, Stderr: &stderr}
	err := z.Build(context.Background(), DefaultMatrix()[0])
	if err == nil {
		t.Fatal("expected error from failing toolchain")
	}
	if !strings.Contains(err.Error(), "-Dtarget=x86_64-linux") {
		t.Errorf("error %q does not name the invocation", err)
	}
	if !strings.Contains(stderr.String(), "linker failed") {
		t.Errorf("toolchain stderr not passed through: %q", stderr.String())
	}
}

func TestZigToolchainMissingBinary(t *testing.T) {
	z := &ZigToolchain{Bin: filepath.Join(t.TempDir(), "no-zig"), ProjectRoot: t.TempDir(), Optimize: "ReleaseFast", BaseName: "themify"}
	if err := z.Build(context.Background(), DefaultMatrix()[0]); err == nil {
		t.Error("expected error for a missing toolchain")
	}
}

func TestZigToolchainOutputPath(t *testing.T) {
	z := &ZigToolchain{ProjectRoot: "/src", BaseName: "themify"}
	tests := []struct {
		entry Entry
		want  string
	}{
		{DefaultMatrix()[0], filepath.Join("/src", "zig-out", "bin", "themify")},
		{DefaultMatrix()[5], filepath.Join("/src", "zig-out", "bin", "themify.exe")},
	}
	for _, tt := range tests {
		if got := z.OutputPath(tt.entry); got != tt.want {
			t.Errorf("OutputPath(%s) = %q, want %q", tt.entry.Label(), got, tt.want)
		}
	}
}

func TestZigToolchainVersion(t *testing.T) {
	bin := writeFakeZig(t, "echo 0.13.0\n")
	z := &ZigToolchain{Bin: bin, ProjectRoot: t.TempDir()}

	got, err := z.Version(context.Background())
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if got != "0.13.0" {
		t.Errorf("Version = %q, want %q", got, "0.13.0")
	}
}

func TestCheckToolchainVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		minimum string
		wantErr bool
	}{
		{"equal", "0.13.0", "0.13.0", false},
		{"newer", "0.14.1", "0.13.0", false},
		{"older", "0.12.0", "0.13.0", true},
		{"v prefix", "v0.13.0", "0.13.0", false},
		{"dev build newer", "0.14.0-dev.2577+271452d22", "0.13.0", false},
		{"dev build of minimum", "0.13.0-dev.1+abc", "0.13.0", true},
		{"unparseable", "master", "0.13.0", true},
		{"bad minimum", "0.13.0", "latest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckToolchainVersion(tt.version, tt.minimum)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckToolchainVersion(%q, %q) error = %v, wantErr %v", tt.version, tt.minimum, err, tt.wantErr)
			}
		})
	}
}
