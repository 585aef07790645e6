// Package markdown renders normalized Last.fm records as note blocks.
package markdown

import (
	"fmt"
	"strings"

	"github.com/jfmyers9/fmnotes/pkg/lastfm"
)

// Context selects which list a record came from.
type Context int

const (
	// Default covers top-by-period and weekly chart lists.
	Default Context = iota
	// Recent covers the recent scrobbles list.
	Recent
)

// String returns the context name.
func (c Context) String() string {
	if c == Recent {
		return "recent"
	}
	return "default"
}

// blockFunc renders one record; index is zero-based.
type blockFunc func(rec lastfm.Record, index int, ctx Context) []string

var handlers = map[lastfm.Kind]blockFunc{
	lastfm.KindTracks:  trackBlock,
	lastfm.KindArtists: artistBlock,
	lastfm.KindAlbums:  albumBlock,
}

// Block renders a single record as a markdown block with no blank lines.
// Unknown kinds render as the empty string.
func Block(kind lastfm.Kind, rec lastfm.Record, index int, ctx Context) string {
	render, ok := handlers[kind]
	if !ok {
		return ""
	}
	return strings.Join(render(rec, index, ctx), "\n")
}

// Blocks renders records in input order, separated by one blank line.
func Blocks(kind lastfm.Kind, records []lastfm.Record, ctx Context) string {
	blocks := make([]string, 0, len(records))
	for i, rec := range records {
		blocks = append(blocks, Block(kind, rec, i, ctx))
	}
	return strings.Join(blocks, "\n\n")
}

func trackBlock(rec lastfm.Record, index int, ctx Context) []string {
	heading := heading(index, lastfm.DisplayName(rec), lastfm.ArtistDisplayName(rec.Artist))

	if ctx != Recent {
		return []string{heading, playcountLine(rec.Playcount)}
	}

	if rec.NowPlaying {
		heading += " (Now playing)"
	}
	lines := []string{heading}
	if img := imageLine(rec); img != "" {
		lines = append(lines, img)
	}
	if album := lastfm.AlbumName(rec.Album); album != "" {
		lines = append(lines, "Album: "+oneLine(album))
	}
	if rec.Playcount != "" {
		lines = append(lines, playcountLine(rec.Playcount))
	}
	return lines
}

func artistBlock(rec lastfm.Record, index int, _ Context) []string {
	return []string{
		heading(index, lastfm.DisplayName(rec), ""),
		playcountLine(rec.Playcount),
	}
}

func albumBlock(rec lastfm.Record, index int, ctx Context) []string {
	lines := []string{
		heading(index, lastfm.DisplayName(rec), lastfm.ArtistDisplayName(rec.Artist)),
		playcountLine(rec.Playcount),
	}
	if ctx == Default {
		if img := imageLine(rec); img != "" {
			lines = append(lines, img)
		}
	}
	return lines
}

// heading builds "## N. name" with an optional " — artist" suffix.
func heading(index int, name, artist string) string {
	h := fmt.Sprintf("## %d. %s", index+1, oneLine(name))
	if artist != "" {
		h += " — " + oneLine(artist)
	}
	return h
}

// playcountLine defaults a missing playcount to 0.
func playcountLine(playcount string) string {
	if playcount == "" {
		playcount = "0"
	}
	return "Playcount: " + playcount
}

// imageLine returns an embed for the record's best image, or "".
func imageLine(rec lastfm.Record) string {
	url, ok := lastfm.BestImageURL(rec.Images)
	if !ok {
		return ""
	}
	return "![](" + embedURL.Replace(url) + ")"
}

// embedURL percent-encodes the characters that end a link destination early.
var embedURL = strings.NewReplacer(
	" ", "%20",
	"(", "%28",
	")", "%29",
	"<", "%3C",
	">", "%3E",
)

// oneLine keeps user supplied titles from breaking the block structure.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
