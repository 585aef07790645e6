package lastfm

import (
	"bytes"
	"encoding/json"
)

// Operation identifies one list-returning API method together with the
// envelope its results are nested in.
type Operation int

const (
	OpRecentTracks Operation = iota
	OpTopTracks
	OpTopArtists
	OpTopAlbums
	OpWeeklyTrackChart
	OpWeeklyArtistChart
	OpWeeklyAlbumChart
	OpWeeklyChartList
)

// envelope is the hardcoded nesting of an operation's response:
// {outer: {inner: [...], "@attr": {...}}}.
type envelope struct {
	method string
	outer  string
	inner  string
}

var envelopes = map[Operation]envelope{
	OpRecentTracks:      {"user.getrecenttracks", "recenttracks", "track"},
	OpTopTracks:         {"user.gettoptracks", "toptracks", "track"},
	OpTopArtists:        {"user.gettopartists", "topartists", "artist"},
	OpTopAlbums:         {"user.gettopalbums", "topalbums", "album"},
	OpWeeklyTrackChart:  {"user.getweeklytrackchart", "weeklytrackchart", "track"},
	OpWeeklyArtistChart: {"user.getweeklyartistchart", "weeklyartistchart", "artist"},
	OpWeeklyAlbumChart:  {"user.getweeklyalbumchart", "weeklyalbumchart", "album"},
	OpWeeklyChartList:   {"user.getweeklychartlist", "weeklychartlist", "chart"},
}

// Method returns the API method name for the operation.
func (op Operation) Method() string {
	return envelopes[op].method
}

// String returns the API method name.
func (op Operation) String() string {
	if m := op.Method(); m != "" {
		return m
	}
	return "unknown"
}

// topOps and weeklyOps map a resource kind to its operation.
var (
	topOps = map[Kind]Operation{
		KindTracks:  OpTopTracks,
		KindArtists: OpTopArtists,
		KindAlbums:  OpTopAlbums,
	}
	weeklyOps = map[Kind]Operation{
		KindTracks:  OpWeeklyTrackChart,
		KindArtists: OpWeeklyArtistChart,
		KindAlbums:  OpWeeklyAlbumChart,
	}
)

// TopOperation returns the top-by-period operation for kind.
func TopOperation(kind Kind) (Operation, bool) {
	op, ok := topOps[kind]
	return op, ok
}

// WeeklyOperation returns the weekly-chart operation for kind.
func WeeklyOperation(kind Kind) (Operation, bool) {
	op, ok := weeklyOps[kind]
	return op, ok
}

// Normalize extracts the result list of op from a raw response body.
//
// It never fails: a missing envelope, a missing list or an undecodable body
// yields an empty slice. A single object is returned as a one-element slice.
// Server order is preserved and entries that cannot be decoded are skipped.
func Normalize(op Operation, body []byte) []Record {
	records := []Record{}
	for _, raw := range listOf(resolve(op, body)) {
		var r Record
		if raw = bytes.TrimSpace(raw); len(raw) == 0 || raw[0] != '{' {
			continue
		}
		if json.Unmarshal(raw, &r) != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}

// NormalizeChartList extracts the weekly chart ranges from a
// user.getWeeklyChartList response, oldest first as the server sends them.
func NormalizeChartList(body []byte) []ChartRange {
	ranges := []ChartRange{}
	for _, raw := range listOf(resolve(OpWeeklyChartList, body)) {
		var c struct {
			From flexString `json:"from"`
			To   flexString `json:"to"`
		}
		if json.Unmarshal(raw, &c) != nil || c.From == "" || c.To == "" {
			continue
		}
		ranges = append(ranges, ChartRange{From: string(c.From), To: string(c.To)})
	}
	return ranges
}

// EnvelopeAttr returns the "@attr" metadata of op's envelope. Missing or
// malformed metadata yields the zero Attr.
func EnvelopeAttr(op Operation, body []byte) Attr {
	outer := outerOf(op, body)
	if outer == nil {
		return Attr{}
	}
	var raw struct {
		User       flexString `json:"user"`
		Page       flexString `json:"page"`
		PerPage    flexString `json:"perPage"`
		Total      flexString `json:"total"`
		TotalPages flexString `json:"totalPages"`
		From       flexString `json:"from"`
		To         flexString `json:"to"`
	}
	if json.Unmarshal(outer["@attr"], &raw) != nil {
		return Attr{}
	}
	return Attr{
		User:       string(raw.User),
		Page:       string(raw.Page),
		PerPage:    string(raw.PerPage),
		Total:      string(raw.Total),
		TotalPages: string(raw.TotalPages),
		From:       string(raw.From),
		To:         string(raw.To),
	}
}

// outerOf decodes the outer envelope object of op.
func outerOf(op Operation, body []byte) map[string]json.RawMessage {
	env, ok := envelopes[op]
	if !ok {
		return nil
	}
	var root map[string]json.RawMessage
	if json.Unmarshal(body, &root) != nil {
		return nil
	}
	var outer map[string]json.RawMessage
	if json.Unmarshal(root[env.outer], &outer) != nil {
		return nil
	}
	return outer
}

// resolve returns the raw value at op's result path, or nil.
func resolve(op Operation, body []byte) json.RawMessage {
	outer := outerOf(op, body)
	if outer == nil {
		return nil
	}
	return outer[envelopes[op].inner]
}

// listOf splits a raw JSON value into list elements: an array yields its
// elements, an object yields itself, anything else yields nothing.
func listOf(data json.RawMessage) []json.RawMessage {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(data, &items) != nil {
			return nil
		}
		return items
	case '{':
		return []json.RawMessage{data}
	default:
		return nil
	}
}
