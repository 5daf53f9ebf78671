package docker

import (
	"context"
	"strings"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/sofmeright/imgcraft/src/compose"
)

// shortIDLen matches the daemon's conventional short image ID width.
const shortIDLen = 12

// List returns every image in the daemon carrying the marker label.
// Zero matches is a successful empty list; presentation decides how to
// report it.
func (c *Client) List(ctx context.Context) ([]BuiltImage, error) {
	filter := filters.NewArgs()
	filter.Add("label", compose.MarkerLabel())

	images, err := c.api.ImageList(ctx, image.ListOptions{Filters: filter})
	if err != nil {
		return nil, err
	}

	out := make([]BuiltImage, 0, len(images))
	for _, img := range images {
		out = append(out, BuiltImage{ID: img.ID, Tags: img.RepoTags})
	}
	return out, nil
}

// ShortID strips the sha256: prefix and truncates to the short form.
func ShortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > shortIDLen {
		id = id[:shortIDLen]
	}
	return id
}
