package windowfinder

import (
	"sort"
	"strings"
)

// Policy filters out windows that are never slide sources: desktop shells,
// panels, terminals, chat clients and windows too small to be a
// presentation. The entries are environment-specific data, not logic;
// adjust them freely.
type Policy struct {
	IgnoredOwners     []string
	IgnoredTitleTerms []string
	MinWidth          int
	MinHeight         int
}

func DefaultPolicy() Policy {
	return Policy{
		IgnoredOwners: []string{
			"gnome-shell", "plasmashell", "xfce4-panel", "polybar", "waybar",
			"code", "codium", "jetbrains-idea", "sublime_text",
			"gnome-terminal-server", "konsole", "xterm", "alacritty", "kitty",
			"slack", "discord", "telegram-desktop", "thunderbird",
		},
		MinWidth:  200,
		MinHeight: 200,
	}
}

// Candidate is a window that matched the keyword search.
type Candidate struct {
	Window  Window
	Keyword string
	// Priority is the index of the matched keyword: lower is better.
	Priority int
}

// Match returns the windows matching any of the keywords, best first.
// Keyword order defines priority; the sort is stable, so among candidates
// of equal priority the enumeration order is kept.
func Match(windows []Window, keywords []string, policy Policy) []Candidate {
	var result []Candidate
	for _, w := range windows {
		if policy.ignores(w) {
			continue
		}
		haystack := strings.ToLower(w.Title + " " + w.Owner)
		for idx, keyword := range keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(haystack, strings.ToLower(keyword)) {
				result = append(result, Candidate{
					Window:   w,
					Keyword:  keyword,
					Priority: idx,
				})
				break
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result
}

func (p Policy) ignores(w Window) bool {
	if w.Title == "" {
		return true
	}
	if w.Bounds.Dx() < p.MinWidth || w.Bounds.Dy() < p.MinHeight {
		return true
	}
	for _, owner := range p.IgnoredOwners {
		if strings.EqualFold(owner, w.Owner) {
			return true
		}
	}
	title := strings.ToLower(w.Title)
	for _, term := range p.IgnoredTitleTerms {
		if strings.Contains(title, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
