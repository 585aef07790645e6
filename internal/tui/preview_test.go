package tui

import (
	"testing"

	"github.com/jfmyers9/fmnotes/pkg/lastfm"
	"github.com/mattn/go-runewidth"
)

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"no width", "hello", 0, "hello"},
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny width", "hello", 2, ".."},
		{"wide runes", "日本語のタイトル", 9, "日本語..."},
		{"emoji", "🎵 Music Track", 8, "🎵 Mu..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateToWidth(tt.input, tt.width)
			if got != tt.expected {
				t.Errorf("truncateToWidth(%q, %d) = %q, expected %q", tt.input, tt.width, got, tt.expected)
			}
			if tt.width > 0 && runewidth.StringWidth(got) > tt.width {
				t.Errorf("result %q is wider than %d", got, tt.width)
			}
		})
	}
}

func TestRecentPreview(t *testing.T) {
	tracks := []lastfm.Record{
		{Name: "Heroes", Artist: lastfm.Ref{Form: lastfm.RefReduced, Text: "David Bowie"}},
		{Name: "Untitled"},
	}

	got := RecentPreview(tracks, 0)
	expected := []string{
		"Results (2)",
		"• Heroes — David Bowie",
		"• Untitled — ?",
	}

	if len(got) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("line %d = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestChartPreview(t *testing.T) {
	tests := []struct {
		name     string
		kind     lastfm.Kind
		records  []lastfm.Record
		width    int
		expected []string
	}{
		{
			name: "tracks",
			kind: lastfm.KindTracks,
			records: []lastfm.Record{
				{Name: "A", Artist: lastfm.Ref{Form: lastfm.RefFull, Name: "X"}, Playcount: "120"},
			},
			expected: []string{"Results (1)", "A — X", "  Playcount: 120"},
		},
		{
			name:     "artists have no suffix",
			kind:     lastfm.KindArtists,
			records:  []lastfm.Record{{Name: "Bowie"}},
			expected: []string{"Results (1)", "Bowie", "  Playcount: 0"},
		},
		{
			name: "albums truncated to width",
			kind: lastfm.KindAlbums,
			records: []lastfm.Record{
				{Name: "The Rise and Fall of Ziggy Stardust", Artist: lastfm.Ref{Form: lastfm.RefReduced, Text: "David Bowie"}, Playcount: "9"},
			},
			width:    16,
			expected: []string{"Results (1)", "The Rise and ...", "  Playcount: 9"},
		},
		{
			name:     "empty",
			kind:     lastfm.KindTracks,
			expected: []string{"Results (0)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChartPreview(tt.kind, tt.records, tt.width)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d lines, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestFetchingMessage(t *testing.T) {
	s := NewState()
	if got := FetchingMessage(&s); got != "Fetching recent tracks..." {
		t.Errorf("unexpected recent message %q", got)
	}

	s.SetSection(SectionTopAlbums)
	s.Period = lastfm.Period3Month
	if got := FetchingMessage(&s); got != "Fetching top albums (3month)..." {
		t.Errorf("unexpected period message %q", got)
	}

	s.Mode = ModeRange
	s.SetWeeks([]lastfm.ChartRange{{From: "1699747200", To: "1700352000"}})
	if got := FetchingMessage(&s); got != "Fetching albums from 2023-11-12 to 2023-11-19..." {
		t.Errorf("unexpected range message %q", got)
	}
}
