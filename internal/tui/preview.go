package tui

import (
	"fmt"
	"strings"

	"github.com/jfmyers9/fmnotes/pkg/lastfm"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// RecentPreview formats fetched scrobbles as "• Name — Artist" lines.
func RecentPreview(tracks []lastfm.Record, width int) []string {
	lines := []string{fmt.Sprintf("Results (%d)", len(tracks))}
	for _, t := range tracks {
		line := fmt.Sprintf("• %s — %s", flatten(lastfm.DisplayName(t)), flatten(lastfm.ArtistDisplayName(t.Artist)))
		lines = append(lines, truncateToWidth(line, width))
	}
	return lines
}

// ChartPreview formats top or weekly records: a title line, then an
// indented playcount line per record.
func ChartPreview(kind lastfm.Kind, records []lastfm.Record, width int) []string {
	lines := []string{fmt.Sprintf("Results (%d)", len(records))}
	for _, r := range records {
		title := flatten(lastfm.DisplayName(r))
		if kind != lastfm.KindArtists {
			title += " — " + flatten(lastfm.ArtistDisplayName(r.Artist))
		}

		playcount := r.Playcount
		if playcount == "" {
			playcount = "0"
		}

		lines = append(lines,
			truncateToWidth(title, width),
			truncateToWidth("  Playcount: "+playcount, width),
		)
	}
	return lines
}

// FetchingMessage is shown while a request is in flight
func FetchingMessage(s *State) string {
	kind, ok := s.Section.Kind()
	switch {
	case !ok:
		return "Fetching recent tracks..."
	case s.Mode == ModeRange:
		if week, ok := s.SelectedWeek(); ok {
			return fmt.Sprintf("Fetching %s from %s to %s...", kind, week.FromDate(), week.ToDate())
		}
		return fmt.Sprintf("Fetching %s...", kind)
	default:
		return fmt.Sprintf("Fetching top %s (%s)...", kind, s.Period)
	}
}

// truncateToWidth shortens text to at most width display columns,
// ending in "..." when cut. Width <= 0 leaves text unchanged.
func truncateToWidth(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}

	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if width <= ellipsisWidth {
		return runewidth.Truncate(ellipsis, width, "")
	}

	return runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
