package lastfm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind is the resource kind a query returns.
type Kind int

const (
	KindTracks Kind = iota
	KindArtists
	KindAlbums
)

// Kinds lists every resource kind in display order.
var Kinds = []Kind{KindTracks, KindArtists, KindAlbums}

// String returns the plural token used in titles and file names.
func (k Kind) String() string {
	switch k {
	case KindTracks:
		return "tracks"
	case KindArtists:
		return "artists"
	case KindAlbums:
		return "albums"
	default:
		return "unknown"
	}
}

// ParseKind converts "tracks", "artists" or "albums" (singular accepted) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tracks", "track":
		return KindTracks, nil
	case "artists", "artist":
		return KindArtists, nil
	case "albums", "album":
		return KindAlbums, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Period is a relative time window for top charts.
type Period string

const (
	Period7Day    Period = "7day"
	Period1Month  Period = "1month"
	Period3Month  Period = "3month"
	Period6Month  Period = "6month"
	Period12Month Period = "12month"
	PeriodOverall Period = "overall"
)

// Periods lists the accepted periods, shortest first.
var Periods = []Period{Period7Day, Period1Month, Period3Month, Period6Month, Period12Month, PeriodOverall}

// ParsePeriod validates a period token.
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of 7day, 1month, 3month, 6month, 12month, overall)", ErrInvalidPeriod, s)
}

// RefForm tags which shape a nested artist or album field arrived in.
type RefForm int

const (
	RefAbsent  RefForm = iota // field missing or null
	RefText                   // bare JSON string
	RefReduced                // {"#text": "...", "mbid": "..."}
	RefFull                   // {"name": "...", "url": "...", ...}
)

// Ref is a nested artist or album reference. The API emits it as a full
// record, as a reduced object carrying only "#text", or occasionally as a
// bare string.
type Ref struct {
	Form RefForm
	Name string // "name" of a full record
	Text string // "#text" of a reduced shape, or the bare string
	MBID string
	URL  string
}

// UnmarshalJSON decodes any of the three wire shapes. Unknown shapes
// decode as RefAbsent rather than failing the enclosing record.
func (r *Ref) UnmarshalJSON(data []byte) error {
	*r = Ref{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if json.Unmarshal(data, &s) == nil {
		*r = Ref{Form: RefText, Text: s}
		return nil
	}

	var raw struct {
		Name *string    `json:"name"`
		Text *string    `json:"#text"`
		MBID flexString `json:"mbid"`
		URL  flexString `json:"url"`
	}
	if json.Unmarshal(data, &raw) != nil {
		return nil
	}

	r.MBID = string(raw.MBID)
	r.URL = string(raw.URL)
	if raw.Name != nil {
		r.Name = *raw.Name
	}
	switch {
	case raw.Text != nil:
		r.Form = RefReduced
		r.Text = *raw.Text
	case raw.Name != nil:
		r.Form = RefFull
	}
	return nil
}

// Image is one size variant of a record's artwork.
type Image struct {
	Size string `json:"size"`
	URL  string `json:"#text"`
}

// Images decodes an image list, dropping entries that are not objects.
type Images []Image

// UnmarshalJSON tolerates a missing list, a single object, and malformed entries.
func (imgs *Images) UnmarshalJSON(data []byte) error {
	*imgs = nil
	for _, raw := range listOf(data) {
		if raw = bytes.TrimSpace(raw); len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var v struct {
			Size flexString `json:"size"`
			URL  flexString `json:"#text"`
		}
		if json.Unmarshal(raw, &v) != nil {
			continue
		}
		*imgs = append(*imgs, Image{Size: string(v.Size), URL: string(v.URL)})
	}
	return nil
}

// Date is a scrobble timestamp as reported by recent tracks.
type Date struct {
	UTS  flexString `json:"uts"`
	Text string     `json:"#text"`
}

// Time converts the unix timestamp, returning the zero time when absent.
func (d *Date) Time() time.Time {
	if d == nil {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(string(d.UTS), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

// recordAttr is the per-record "@attr" object.
type recordAttr struct {
	NowPlaying flexBool   `json:"nowplaying"`
	Rank       flexString `json:"rank"`
}

// Record is one normalized track, artist or album. Every field other than
// Name is optional; absent fields hold their zero value.
type Record struct {
	Name       string
	Artist     Ref
	Album      Ref
	Playcount  string
	NowPlaying bool
	Rank       string
	URL        string
	MBID       string
	Images     Images
	Date       *Date
}

// UnmarshalJSON decodes a record from any of the seven list envelopes.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      flexString      `json:"name"`
		Artist    Ref             `json:"artist"`
		Album     Ref             `json:"album"`
		Playcount flexString      `json:"playcount"`
		URL       flexString      `json:"url"`
		MBID      flexString      `json:"mbid"`
		Image     Images          `json:"image"`
		Date      json.RawMessage `json:"date"`
		Attr      json.RawMessage `json:"@attr"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var attr recordAttr
	_ = json.Unmarshal(raw.Attr, &attr)

	var date *Date
	if d := new(Date); json.Unmarshal(raw.Date, d) == nil && d.UTS != "" {
		date = d
	}

	*r = Record{
		Name:       string(raw.Name),
		Artist:     raw.Artist,
		Album:      raw.Album,
		Playcount:  string(raw.Playcount),
		NowPlaying: bool(attr.NowPlaying),
		Rank:       string(attr.Rank),
		URL:        string(raw.URL),
		MBID:       string(raw.MBID),
		Images:     raw.Image,
		Date:       date,
	}
	return nil
}

// ChartRange names one historical reporting week.
type ChartRange struct {
	From string `json:"from"` // unix seconds
	To   string `json:"to"`   // unix seconds
}

// FromDate returns the start of the range as YYYY-MM-DD (UTC).
func (c ChartRange) FromDate() string {
	return TimestampDate(c.From)
}

// ToDate returns the end of the range as YYYY-MM-DD (UTC).
func (c ChartRange) ToDate() string {
	return TimestampDate(c.To)
}

// Label is the human readable form shown in pickers and titles.
func (c ChartRange) Label() string {
	return c.FromDate() + " → " + c.ToDate()
}

// TimestampDate formats a unix-seconds string as YYYY-MM-DD in UTC.
// Unparseable input is returned unchanged.
func TimestampDate(ts string) string {
	secs, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64)
	if err != nil {
		return ts
	}
	return time.Unix(secs, 0).UTC().Format("2006-01-02")
}

// Attr is the envelope-level "@attr" metadata of a list response.
type Attr struct {
	User       string
	Page       string
	PerPage    string
	Total      string
	TotalPages string
	From       string
	To         string
}

// Range returns the chart range carried by weekly chart envelopes.
func (a Attr) Range() (ChartRange, bool) {
	if a.From == "" || a.To == "" {
		return ChartRange{}, false
	}
	return ChartRange{From: a.From, To: a.To}, true
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

// flexBool accepts true, "true" or "1".
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if json.Unmarshal(data, &b) == nil {
		*f = flexBool(b)
		return nil
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		s = strings.ToLower(strings.TrimSpace(s))
		*f = flexBool(s == "true" || s == "1")
		return nil
	}
	*f = false
	return nil
}
