package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sofmeright/imgcraft/src/docker"
	"github.com/sofmeright/imgcraft/src/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestBuildDryRunDockerfile(t *testing.T) {
	// --dry-run never constructs a daemon client, so this must pass
	// without Docker available.
	out, err := execute(t, "build", "--dry-run", "--output=dockerfile", "--apt=curl,nano")
	if err != nil {
		t.Fatalf("build --dry-run: %v", err)
	}
	if !strings.Contains(out, "FROM ubuntu:18.04") {
		t.Errorf("dockerfile output missing base image:\n%s", out)
	}
	if !strings.Contains(out, "curl nano") {
		t.Errorf("apt packages not joined in caller order:\n%s", out)
	}
}

func TestBuildDryRunImageIDIsEmpty(t *testing.T) {
	out, err := execute(t, "build", "--dry-run", "--output=image-id")
	if err != nil {
		t.Fatalf("build --dry-run: %v", err)
	}
	if out != "" {
		t.Errorf("image-id output should be empty under --dry-run, got %q", out)
	}
}

func TestBuildInvalidOutput(t *testing.T) {
	if _, err := execute(t, "build", "--dry-run", "--output=yaml"); err == nil {
		t.Error("expected error for invalid --output")
	}
}

func TestBuildInvalidKubectlVersion(t *testing.T) {
	if _, err := execute(t, "build", "--dry-run", "--output=dockerfile", "--with-kubectl=not-a-version"); err == nil {
		t.Error("expected error for invalid kubectl version")
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	want := version.ProgName + ", version " + version.Version + "\n"
	if out != want {
		t.Errorf("--version output = %q, want %q", out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != version.String() {
		t.Errorf("version output = %q, want %q", out, version.String())
	}
}

func TestRenderImageTableNoneFound(t *testing.T) {
	var buf bytes.Buffer
	renderImageTable(&buf, nil, true)
	if !strings.Contains(buf.String(), "No images built with "+version.ProgName+" found.") {
		t.Errorf("missing none-found message: %q", buf.String())
	}
	if strings.Contains(buf.String(), "Image ID") {
		t.Errorf("empty table rendered instead of none-found message: %q", buf.String())
	}
}

func TestRenderImageTableShortAndFull(t *testing.T) {
	images := []docker.BuiltImage{
		{
			ID:   "sha256:4e5021d210f65ebe915670c7089120120bc0a303b90208592851708c1b884c14",
			Tags: []string{"imc-3fa85f64:9b2c1ad4"},
		},
	}

	var short bytes.Buffer
	renderImageTable(&short, images, true)
	if !strings.Contains(short.String(), "Image ID") || !strings.Contains(short.String(), "Image tags") {
		t.Errorf("missing table header: %q", short.String())
	}
	if !strings.Contains(short.String(), "4e5021d210f6") || strings.Contains(short.String(), "sha256:") {
		t.Errorf("short form should strip and truncate the ID: %q", short.String())
	}

	var full bytes.Buffer
	renderImageTable(&full, images, false)
	if !strings.Contains(full.String(), "sha256:4e5021d210f65ebe") {
		t.Errorf("full form should keep the whole ID: %q", full.String())
	}
}
