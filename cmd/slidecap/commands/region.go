package commands

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// parseRegion parses a 'x,y,width,height' string into a rectangle.
func parseRegion(s string) (*image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("expected 4 comma-separated integers, received %d part(s)", len(parts))
	}

	values := make([]int, 0, 4)
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("unable to parse '%s' as an integer: %w", part, err)
		}
		values = append(values, value)
	}

	x, y, width, height := values[0], values[1], values[2], values[3]
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("expected positive width and height, received %dx%d", width, height)
	}

	region := image.Rect(x, y, x+width, y+height)
	return &region, nil
}
