package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/image"
	"github.com/sofmeright/imgcraft/src/compose"
	"github.com/sofmeright/imgcraft/src/version"
	"go.uber.org/zap"
)

// Remove deletes a marker-labeled image by ID or reference. Images that
// do not carry the marker are refused — this tool only manages what it
// built.
func (c *Client) Remove(ctx context.Context, ref string, force bool) error {
	inspect, _, err := c.api.ImageInspectWithRaw(ctx, ref)
	if err != nil {
		return err
	}
	if inspect.Config == nil || !compose.HasMarker(inspect.Config.Labels) {
		return fmt.Errorf("image %s was not built with %s", ref, version.ProgName)
	}

	c.log.Debug("removing image", zap.String("image_id", inspect.ID))

	_, err = c.api.ImageRemove(ctx, inspect.ID, image.RemoveOptions{
		Force:         force,
		PruneChildren: true,
	})
	return err
}
