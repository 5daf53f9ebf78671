package docker

import (
	"archive/tar"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestBuildContextSingleDockerfileEntry(t *testing.T) {
	const content = "FROM ubuntu:18.04\nLABEL builtwith=imgcraft\n"

	r, err := buildContext(content)
	if err != nil {
		t.Fatalf("buildContext: %v", err)
	}

	tr := tar.NewReader(r)
	hdr, err := tr.Next()
	if err != nil {
		t.Fatalf("reading tar entry: %v", err)
	}
	if hdr.Name != "Dockerfile" {
		t.Errorf("entry name = %q, want Dockerfile", hdr.Name)
	}

	data, err := io.ReadAll(tr)
	if err != nil {
		t.Fatalf("reading entry body: %v", err)
	}
	if string(data) != content {
		t.Errorf("entry body = %q, want %q", data, content)
	}

	if _, err := tr.Next(); err != io.EOF {
		t.Errorf("expected exactly one tar entry, got second entry (err=%v)", err)
	}
}

func TestDrainBuildStreamOK(t *testing.T) {
	stream := strings.NewReader(
		`{"stream":"Step 1/2 : FROM ubuntu:18.04\n"}` + "\n" +
			`{"stream":" ---> 4e5021d210f6\n"}` + "\n" +
			`{"stream":"Successfully built 4e5021d210f6\n"}` + "\n",
	)
	if err := drainBuildStream(stream, zap.NewNop()); err != nil {
		t.Errorf("drainBuildStream: %v", err)
	}
}

func TestDrainBuildStreamErrorVerbatim(t *testing.T) {
	stream := strings.NewReader(
		`{"stream":"Step 1/1 : FROM nosuchimage\n"}` + "\n" +
			`{"errorDetail":{"message":"pull access denied for nosuchimage"},"error":"pull access denied for nosuchimage"}` + "\n",
	)
	err := drainBuildStream(stream, zap.NewNop())
	if err == nil {
		t.Fatal("expected error from stream")
	}
	// Daemon error passes through unmodified.
	if err.Error() != "pull access denied for nosuchimage" {
		t.Errorf("error not verbatim: %q", err)
	}
}
