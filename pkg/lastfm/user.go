package lastfm

import (
	"context"
	"fmt"
	"strconv"
)

// UserService provides the read-only user.* listening history operations.
type UserService struct {
	client *Client
}

// DefaultLimit is the page size used when a caller passes a non-positive limit.
const DefaultLimit = 10

// GetRecentTracks returns the user's most recent scrobbles, newest first.
//
// A track that is playing right now is included with NowPlaying set and no
// Date.
//
// Example:
//
//	tracks, err := client.User().GetRecentTracks(ctx, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, t := range tracks {
//	    fmt.Println(t.Name, "-", lastfm.ArtistDisplayName(t.Artist))
//	}
func (s *UserService) GetRecentTracks(ctx context.Context, limit int) ([]Record, error) {
	return s.list(ctx, OpRecentTracks, map[string]string{"limit": limitParam(limit)})
}

// GetTopTracks returns the user's top tracks over period.
func (s *UserService) GetTopTracks(ctx context.Context, period Period, limit int) ([]Record, error) {
	return s.Top(ctx, KindTracks, period, limit)
}

// GetTopArtists returns the user's top artists over period.
func (s *UserService) GetTopArtists(ctx context.Context, period Period, limit int) ([]Record, error) {
	return s.Top(ctx, KindArtists, period, limit)
}

// GetTopAlbums returns the user's top albums over period.
func (s *UserService) GetTopAlbums(ctx context.Context, period Period, limit int) ([]Record, error) {
	return s.Top(ctx, KindAlbums, period, limit)
}

// Top returns the user's top records of kind over period, rank ordered.
func (s *UserService) Top(ctx context.Context, kind Kind, period Period, limit int) ([]Record, error) {
	op, ok := TopOperation(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	if _, err := ParsePeriod(string(period)); err != nil {
		return nil, err
	}
	return s.list(ctx, op, map[string]string{
		"period": string(period),
		"limit":  limitParam(limit),
	})
}

// GetWeeklyTrackChart returns the track chart for one reporting week.
func (s *UserService) GetWeeklyTrackChart(ctx context.Context, rng ChartRange) ([]Record, error) {
	return s.Weekly(ctx, KindTracks, rng)
}

// GetWeeklyArtistChart returns the artist chart for one reporting week.
func (s *UserService) GetWeeklyArtistChart(ctx context.Context, rng ChartRange) ([]Record, error) {
	return s.Weekly(ctx, KindArtists, rng)
}

// GetWeeklyAlbumChart returns the album chart for one reporting week.
func (s *UserService) GetWeeklyAlbumChart(ctx context.Context, rng ChartRange) ([]Record, error) {
	return s.Weekly(ctx, KindAlbums, rng)
}

// Weekly returns the chart of kind for the week rng.
//
// Use GetWeeklyChartList to discover the ranges Last.fm accepts.
func (s *UserService) Weekly(ctx context.Context, kind Kind, rng ChartRange) ([]Record, error) {
	op, ok := WeeklyOperation(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
	return s.list(ctx, op, map[string]string{
		"from": rng.From,
		"to":   rng.To,
	})
}

// GetWeeklyChartList returns every reporting week available for the user,
// oldest first.
func (s *UserService) GetWeeklyChartList(ctx context.Context) ([]ChartRange, error) {
	body, err := s.client.Call(ctx, OpWeeklyChartList.Method(), nil)
	if err != nil {
		return nil, err
	}
	return NormalizeChartList(body), nil
}

func (s *UserService) list(ctx context.Context, op Operation, params map[string]string) ([]Record, error) {
	body, err := s.client.Call(ctx, op.Method(), params)
	if err != nil {
		return nil, err
	}
	records := Normalize(op, body)
	s.client.logDebugf("lastfm: %s normalized %d records", op, len(records))
	return records, nil
}

func limitParam(limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return strconv.Itoa(limit)
}
