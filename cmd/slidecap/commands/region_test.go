package commands

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	region, err := parseRegion("10,20,800,600")
	require.NoError(t, err)
	require.Equal(t, image.Rect(10, 20, 810, 620), *region)

	region, err = parseRegion(" 0 , 0 , 1920 , 1080 ")
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 1920, 1080), *region)

	for _, invalid := range []string{
		"",
		"10,20,800",
		"10,20,800,600,7",
		"a,b,c,d",
		"0,0,0,600",
		"0,0,800,-600",
	} {
		_, err := parseRegion(invalid)
		require.Error(t, err, "%q", invalid)
	}
}

func TestResolveRegionRequiresAChoice(t *testing.T) {
	_, err := resolveRegion(context.Background(), "", nil, false, false)
	require.Error(t, err)
}

func TestResolveRegionFullScreenSentinel(t *testing.T) {
	region, err := resolveRegion(context.Background(), "", nil, true, false)
	require.NoError(t, err)
	require.Nil(t, region)
}

func TestResolveRegionExplicitRectangle(t *testing.T) {
	region, err := resolveRegion(context.Background(), "0,0,640,480", nil, false, false)
	require.NoError(t, err)
	require.NotNil(t, region)
	require.Equal(t, image.Rect(0, 0, 640, 480), *region)
}
