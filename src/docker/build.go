package docker

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/pkg/jsonmessage"
	"go.uber.org/zap"
)

// BuiltImage is the daemon's view of an image built by this tool.
// Lifecycle is owned by the daemon; this is read-only here.
type BuiltImage struct {
	ID   string
	Tags []string
}

// Build submits dockerfile as a tar-less in-memory build context, tags the
// result with tag, and returns the built image's ID and repo tags.
// One-shot: no retry, no timeout of its own — a daemon hang is our hang.
func (c *Client) Build(ctx context.Context, dockerfile, tag string) (*BuiltImage, error) {
	buildCtx, err := buildContext(dockerfile)
	if err != nil {
		return nil, err
	}

	c.log.Debug("submitting build", zap.String("tag", tag))

	resp, err := c.api.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Dockerfile: "Dockerfile",
		Tags:       []string{tag},
		Remove:     true,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := drainBuildStream(resp.Body, c.log); err != nil {
		return nil, err
	}

	inspect, _, err := c.api.ImageInspectWithRaw(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("inspecting built image %s: %w", tag, err)
	}

	c.log.Debug("build finished",
		zap.String("image_id", inspect.ID),
		zap.Strings("tags", inspect.RepoTags),
	)

	return &BuiltImage{ID: inspect.ID, Tags: inspect.RepoTags}, nil
}

// buildContext wraps the Dockerfile text as a single-entry tar archive,
// the build context shape the Engine API expects.
func buildContext(dockerfile string) (io.Reader, error) {
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)

	hdr := &tar.Header{
		Name: "Dockerfile",
		Mode: 0o644,
		Size: int64(len(dockerfile)),
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return nil, fmt.Errorf("writing build context: %w", err)
	}
	if _, err := tw.Write([]byte(dockerfile)); err != nil {
		return nil, fmt.Errorf("writing build context: %w", err)
	}
	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("writing build context: %w", err)
	}
	return &buf, nil
}

// drainBuildStream consumes the daemon's JSON progress stream. Progress
// lines go to the debug log; a stream error aborts the build and is
// returned as-is.
func drainBuildStream(r io.Reader, log *zap.Logger) error {
	dec := json.NewDecoder(r)
	for {
		var msg jsonmessage.JSONMessage
		if err := dec.Decode(&msg); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decoding build stream: %w", err)
		}
		if msg.Error != nil {
			return msg.Error
		}
		if line := strings.TrimRight(msg.Stream, "\n"); line != "" {
			log.Debug("build", zap.String("stream", line))
		}
	}
}
