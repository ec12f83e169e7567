package windowfinder

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func bigWindow(id WindowID, title, owner string) Window {
	return Window{
		ID:     id,
		Title:  title,
		Owner:  owner,
		Bounds: image.Rect(0, 0, 1280, 720),
	}
}

func TestMatchKeywordPriority(t *testing.T) {
	windows := []Window{
		bigWindow(1, "Weekly sync - Zoom", "zoom"),
		bigWindow(2, "Distributed Systems - YouTube", "firefox"),
		bigWindow(3, "New Tab", "firefox"),
	}

	candidates := Match(windows, []string{"YouTube", "Zoom"}, Policy{MinWidth: 200, MinHeight: 200})
	require.Len(t, candidates, 2)
	require.Equal(t, WindowID(2), candidates[0].Window.ID)
	require.Equal(t, 0, candidates[0].Priority)
	require.Equal(t, WindowID(1), candidates[1].Window.ID)
	require.Equal(t, 1, candidates[1].Priority)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	windows := []Window{
		bigWindow(1, "lecture 12 - youtube", "FIREFOX"),
	}

	candidates := Match(windows, []string{"YOUTUBE"}, Policy{MinWidth: 200, MinHeight: 200})
	require.Len(t, candidates, 1)

	candidates = Match(windows, []string{"firefox"}, Policy{MinWidth: 200, MinHeight: 200})
	require.Len(t, candidates, 1, "the owner name participates in matching")
}

func TestMatchStableAmongEqualPriority(t *testing.T) {
	windows := []Window{
		bigWindow(1, "Talk A - YouTube", "firefox"),
		bigWindow(2, "Talk B - YouTube", "firefox"),
	}

	candidates := Match(windows, []string{"YouTube"}, Policy{MinWidth: 200, MinHeight: 200})
	require.Len(t, candidates, 2)
	require.Equal(t, WindowID(1), candidates[0].Window.ID)
	require.Equal(t, WindowID(2), candidates[1].Window.ID)
}

func TestMatchAppliesPolicy(t *testing.T) {
	policy := Policy{
		IgnoredOwners:     []string{"slack"},
		IgnoredTitleTerms: []string{"do not record"},
		MinWidth:          200,
		MinHeight:         200,
	}

	tooSmall := bigWindow(1, "Zoom", "zoom")
	tooSmall.Bounds = image.Rect(0, 0, 199, 100)

	windows := []Window{
		tooSmall,
		bigWindow(2, "", "zoom"),
		bigWindow(3, "Zoom call", "Slack"),
		bigWindow(4, "Zoom - DO NOT RECORD", "zoom"),
		bigWindow(5, "Zoom meeting", "zoom"),
	}

	candidates := Match(windows, []string{"zoom"}, policy)
	require.Len(t, candidates, 1)
	require.Equal(t, WindowID(5), candidates[0].Window.ID)
}

func TestAutoPick(t *testing.T) {
	ctx := context.Background()

	picked, err := AutoPick{}.Pick(ctx, nil)
	require.NoError(t, err)
	require.Nil(t, picked)

	candidates := []Candidate{
		{Window: bigWindow(1, "a", "x"), Priority: 0},
		{Window: bigWindow(2, "b", "y"), Priority: 0},
	}
	picked, err = AutoPick{}.Pick(ctx, candidates)
	require.NoError(t, err)
	require.NotNil(t, picked)
	require.Equal(t, WindowID(1), picked.Window.ID)
}
