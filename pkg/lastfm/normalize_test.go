package lastfm

import (
	"reflect"
	"testing"
)

const recentTracksBody = `{
  "recenttracks": {
    "track": [
      {
        "artist": {"mbid": "", "#text": "David Bowie"},
        "album": {"mbid": "", "#text": "Hunky Dory"},
        "name": "Life on Mars?",
        "image": [
          {"size": "small", "#text": "https://img/s.png"},
          {"size": "extralarge", "#text": "https://img/xl.png"}
        ],
        "@attr": {"nowplaying": "true"}
      },
      {
        "artist": {"mbid": "", "#text": "Talking Heads"},
        "album": {"mbid": "", "#text": "Remain in Light"},
        "name": "Once in a Lifetime",
        "date": {"uts": "1700000000", "#text": "14 Nov 2023, 22:13"}
      }
    ],
    "@attr": {"user": "rj", "page": "1", "perPage": "2", "total": "9000", "totalPages": "4500"}
  }
}`

func TestNormalize_MissingPathReturnsEmpty(t *testing.T) {
	ops := []Operation{
		OpRecentTracks, OpTopTracks, OpTopArtists, OpTopAlbums,
		OpWeeklyTrackChart, OpWeeklyArtistChart, OpWeeklyAlbumChart,
	}
	bodies := map[string]string{
		"empty object":     `{}`,
		"wrong envelope":   `{"somethingelse": {"track": []}}`,
		"missing list":     `{"recenttracks": {}, "toptracks": {}, "topartists": {}, "topalbums": {}, "weeklytrackchart": {}, "weeklyartistchart": {}, "weeklyalbumchart": {}}`,
		"not json":         `<lfm status="ok"/>`,
		"empty body":       ``,
		"envelope is list": `{"toptracks": []}`,
		"list is string":   `{"toptracks": {"track": "none"}}`,
	}

	for _, op := range ops {
		for name, body := range bodies {
			t.Run(op.String()+"/"+name, func(t *testing.T) {
				got := Normalize(op, []byte(body))
				if got == nil {
					t.Fatal("expected non-nil slice")
				}
				if len(got) != 0 {
					t.Errorf("expected no records, got %d", len(got))
				}
			})
		}
	}
}

func TestNormalize_SingleObjectMatchesOneElementList(t *testing.T) {
	single := `{"recenttracks": {"track": {"name": "Heroes", "artist": {"#text": "David Bowie"}, "date": {"uts": "1700000000"}}}}`
	list := `{"recenttracks": {"track": [{"name": "Heroes", "artist": {"#text": "David Bowie"}, "date": {"uts": "1700000000"}}]}}`

	a := Normalize(OpRecentTracks, []byte(single))
	b := Normalize(OpRecentTracks, []byte(list))

	if len(a) != 1 {
		t.Fatalf("expected 1 record, got %d", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("single object and one-element list differ:\n%#v\n%#v", a, b)
	}
}

func TestNormalize_RecentTracks(t *testing.T) {
	records := Normalize(OpRecentTracks, []byte(recentTracksBody))
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	playing := records[0]
	if !playing.NowPlaying {
		t.Error("expected first record to be now playing")
	}
	if playing.Date != nil {
		t.Errorf("expected now playing record to have no date, got %+v", playing.Date)
	}
	if got := ArtistDisplayName(playing.Artist); got != "David Bowie" {
		t.Errorf("expected artist David Bowie, got %q", got)
	}
	if got := AlbumName(playing.Album); got != "Hunky Dory" {
		t.Errorf("expected album Hunky Dory, got %q", got)
	}
	if url, _ := BestImageURL(playing.Images); url != "https://img/xl.png" {
		t.Errorf("expected extralarge image, got %q", url)
	}

	played := records[1]
	if played.NowPlaying {
		t.Error("expected second record not to be now playing")
	}
	if played.Date == nil || played.Date.Time().Unix() != 1700000000 {
		t.Errorf("expected date 1700000000, got %+v", played.Date)
	}
	if played.Name != "Once in a Lifetime" {
		t.Errorf("expected order preserved, got %q", played.Name)
	}
}

func TestNormalize_PreservesServerOrder(t *testing.T) {
	body := `{"topartists": {"artist": [
		{"name": "C", "playcount": "3", "@attr": {"rank": "1"}},
		{"name": "A", "playcount": "10", "@attr": {"rank": "2"}},
		{"name": "B", "playcount": 7, "@attr": {"rank": "3"}}
	]}}`

	records := Normalize(OpTopArtists, []byte(body))
	var names, counts []string
	for _, r := range records {
		names = append(names, r.Name)
		counts = append(counts, r.Playcount)
	}

	if !reflect.DeepEqual(names, []string{"C", "A", "B"}) {
		t.Errorf("expected server order, got %v", names)
	}
	if !reflect.DeepEqual(counts, []string{"3", "10", "7"}) {
		t.Errorf("expected playcounts as strings, got %v", counts)
	}
	if records[2].Rank != "3" {
		t.Errorf("expected rank 3, got %q", records[2].Rank)
	}
}

func TestNormalize_SkipsMalformedEntries(t *testing.T) {
	body := `{"weeklyalbumchart": {"album": [
		{"name": "Low", "artist": {"#text": "David Bowie"}, "playcount": "4"},
		"garbage",
		42,
		null,
		{"name": "Station to Station", "artist": {"#text": "David Bowie"}, "@attr": "odd", "date": 5}
	]}}`

	records := Normalize(OpWeeklyAlbumChart, []byte(body))
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Name != "Station to Station" {
		t.Errorf("expected malformed attr to be tolerated, got %q", records[1].Name)
	}
}

func TestNormalize_ArtistShapes(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		body     string
		wantForm RefForm
		want     string
	}{
		{
			name:     "top tracks full artist",
			op:       OpTopTracks,
			body:     `{"toptracks": {"track": [{"name": "t", "artist": {"name": "Bowie", "url": "u", "mbid": "m"}}]}}`,
			wantForm: RefFull,
			want:     "Bowie",
		},
		{
			name:     "weekly album chart reduced artist",
			op:       OpWeeklyAlbumChart,
			body:     `{"weeklyalbumchart": {"album": [{"name": "a", "artist": {"#text": "Bowie", "mbid": ""}}]}}`,
			wantForm: RefReduced,
			want:     "Bowie",
		},
		{
			name:     "bare string artist",
			op:       OpWeeklyTrackChart,
			body:     `{"weeklytrackchart": {"track": [{"name": "t", "artist": "Bowie"}]}}`,
			wantForm: RefText,
			want:     "Bowie",
		},
		{
			name:     "missing artist",
			op:       OpTopAlbums,
			body:     `{"topalbums": {"album": [{"name": "a"}]}}`,
			wantForm: RefAbsent,
			want:     "?",
		},
		{
			name:     "null artist",
			op:       OpTopAlbums,
			body:     `{"topalbums": {"album": [{"name": "a", "artist": null}]}}`,
			wantForm: RefAbsent,
			want:     "?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := Normalize(tt.op, []byte(tt.body))
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Artist.Form != tt.wantForm {
				t.Errorf("expected form %d, got %d", tt.wantForm, records[0].Artist.Form)
			}
			if got := ArtistDisplayName(records[0].Artist); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEnvelopeAttr(t *testing.T) {
	body := `{"weeklytrackchart": {"track": [], "@attr": {"user": "rj", "from": "1699747200", "to": "1700352000"}}}`

	attr := EnvelopeAttr(OpWeeklyTrackChart, []byte(body))
	if attr.User != "rj" {
		t.Errorf("expected user rj, got %q", attr.User)
	}
	rng, ok := attr.Range()
	if !ok {
		t.Fatal("expected chart range")
	}
	if rng.Label() != "2023-11-12 → 2023-11-19" {
		t.Errorf("unexpected label %q", rng.Label())
	}

	if _, ok := EnvelopeAttr(OpTopTracks, []byte(`{}`)).Range(); ok {
		t.Error("expected no range for missing envelope")
	}

	recent := EnvelopeAttr(OpRecentTracks, []byte(recentTracksBody))
	if recent.Total != "9000" || recent.TotalPages != "4500" {
		t.Errorf("unexpected paging attr %+v", recent)
	}
}

func TestNormalizeChartList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []ChartRange
	}{
		{
			name: "list",
			body: `{"weeklychartlist": {"chart": [{"#text": "", "from": "1", "to": "2"}, {"#text": "", "from": "3", "to": "4"}]}}`,
			want: []ChartRange{{From: "1", To: "2"}, {From: "3", To: "4"}},
		},
		{
			name: "single object",
			body: `{"weeklychartlist": {"chart": {"from": "1", "to": "2"}}}`,
			want: []ChartRange{{From: "1", To: "2"}},
		},
		{
			name: "numeric bounds and incomplete entries",
			body: `{"weeklychartlist": {"chart": [{"from": 1, "to": 2}, {"from": "3"}]}}`,
			want: []ChartRange{{From: "1", To: "2"}},
		},
		{
			name: "missing",
			body: `{"weeklychartlist": {}}`,
			want: []ChartRange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeChartList([]byte(tt.body))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
