// Package docker is a thin gateway to the local Docker Engine API: it
// submits composed Dockerfiles as in-memory build contexts and queries
// images by the tool's marker label. Build semantics (layer cache,
// error reporting) belong to the daemon; failures pass through verbatim.
package docker

import (
	"fmt"

	"github.com/docker/docker/client"
	"go.uber.org/zap"
)

// Client wraps the Engine API client for the local daemon.
type Client struct {
	api *client.Client
	log *zap.Logger
}

// New connects to the local Docker daemon using the standard environment
// (DOCKER_HOST et al.) with API version negotiation.
func New(log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	api, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to Docker daemon: %w", err)
	}
	return &Client{api: api, log: log}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.api.Close()
}
