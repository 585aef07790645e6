// Package lastfm provides a client library for the read-only parts of the
// Last.fm API 2.0 that describe a user's listening history.
//
// # Overview
//
// Every request is a single GET with format=json and a static API key. No
// session or signature is involved. Results are normalized into []Record
// regardless of how the particular endpoint nests them.
//
// # Quick Start
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey:   "your-api-key",
//	    Username: "rj",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	top, err := client.User().GetTopAlbums(ctx, lastfm.Period7Day, 20)
//
// # Weekly Charts
//
// Weekly charts are addressed by a ChartRange that must be one of the
// ranges returned by GetWeeklyChartList:
//
//	weeks, err := client.User().GetWeeklyChartList(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	latest := weeks[len(weeks)-1]
//	tracks, err := client.User().GetWeeklyTrackChart(ctx, latest)
//
// # Response Shapes
//
// The API is inconsistent about nesting and cardinality. Normalize always
// returns a slice, wrapping a lone object into one element and returning an
// empty slice when the expected path is absent. Nested artists arrive either
// as full records ({"name": ...}) or reduced shapes ({"#text": ...}); use
// ArtistDisplayName to resolve either. BestImageURL picks artwork by size.
//
// # Error Handling
//
// A non-2xx status is reported as *HTTPError; an error envelope in a
// successful response is reported as *Error:
//
//	_, err := client.User().GetRecentTracks(ctx, 10)
//	var httpErr *lastfm.HTTPError
//	if errors.As(err, &httpErr) {
//	    fmt.Println("status", httpErr.StatusCode)
//	}
//
// # API Coverage
//
//   - user.getRecentTracks
//   - user.getTopTracks, user.getTopArtists, user.getTopAlbums
//   - user.getWeeklyTrackChart, user.getWeeklyArtistChart, user.getWeeklyAlbumChart
//   - user.getWeeklyChartList
//
// # Last.fm API Documentation
//
// https://www.last.fm/api/show/user.getRecentTracks
package lastfm
