package lastfm

import (
	"encoding/json"
	"testing"
)

func TestArtistDisplayName(t *testing.T) {
	tests := []struct {
		name string
		raw  string // JSON for the artist field; "" means absent
		want string
	}{
		{name: "full record", raw: `{"name": "Bowie"}`, want: "Bowie"},
		{name: "reduced shape", raw: `{"#text": "Bowie"}`, want: "Bowie"},
		{name: "absent", raw: "", want: "?"},
		{name: "bare string", raw: `"Bowie"`, want: "Bowie"},
		{name: "empty bare string", raw: `""`, want: "?"},
		{name: "reduced empty text", raw: `{"#text": "", "mbid": "x"}`, want: "?"},
		{name: "full empty name", raw: `{"name": ""}`, want: "?"},
		{name: "reduced wins over name", raw: `{"#text": "David Bowie", "name": "Bowie"}`, want: "David Bowie"},
		{name: "empty reduced falls back to name", raw: `{"#text": "", "name": "Bowie"}`, want: "Bowie"},
		{name: "unrelated object", raw: `{"mbid": "x"}`, want: "?"},
		{name: "number", raw: `12`, want: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref Ref
			if tt.raw != "" {
				if err := json.Unmarshal([]byte(tt.raw), &ref); err != nil {
					t.Fatalf("unmarshal failed: %v", err)
				}
			}
			if got := ArtistDisplayName(ref); got != tt.want {
				t.Errorf("ArtistDisplayName(%s) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAlbumName(t *testing.T) {
	var reduced Ref
	if err := json.Unmarshal([]byte(`{"mbid": "", "#text": "Low"}`), &reduced); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := AlbumName(reduced); got != "Low" {
		t.Errorf("expected Low, got %q", got)
	}
	if got := AlbumName(Ref{}); got != "" {
		t.Errorf("expected empty album name for absent ref, got %q", got)
	}
}

func TestBestImageURL(t *testing.T) {
	tests := []struct {
		name   string
		images []Image
		want   string
		wantOK bool
	}{
		{
			name:   "prefers large over small",
			images: []Image{{Size: "small", URL: "s"}, {Size: "large", URL: "l"}},
			want:   "l",
			wantOK: true,
		},
		{
			name:   "extralarge beats everything",
			images: []Image{{Size: "medium", URL: "m"}, {Size: "extralarge", URL: "xl"}, {Size: "large", URL: "l"}},
			want:   "xl",
			wantOK: true,
		},
		{
			name:   "empty list",
			images: []Image{},
		},
		{
			name: "nil list",
		},
		{
			name:   "unknown size falls back to first",
			images: []Image{{Size: "unknown", URL: "u"}},
			want:   "u",
			wantOK: true,
		},
		{
			name:   "missing url is not a match",
			images: []Image{{Size: "extralarge", URL: ""}, {Size: "medium", URL: "m"}},
			want:   "m",
			wantOK: true,
		},
		{
			name:   "no urls at all",
			images: []Image{{Size: "large"}, {Size: "mega"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestImageURL(tt.images)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("BestImageURL() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestImagesUnmarshalDropsMalformed(t *testing.T) {
	var imgs Images
	raw := `[{"size": "small", "#text": "s"}, "junk", null, {"size": "large"}]`
	if err := json.Unmarshal([]byte(raw), &imgs); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(imgs) != 2 {
		t.Fatalf("expected 2 images, got %d: %+v", len(imgs), imgs)
	}
	if got, _ := BestImageURL(imgs); got != "s" {
		t.Errorf("expected s, got %q", got)
	}
}

func TestParsePeriod(t *testing.T) {
	for _, p := range Periods {
		if got, err := ParsePeriod(string(p)); err != nil || got != p {
			t.Errorf("ParsePeriod(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePeriod("2week"); err == nil {
		t.Error("expected error for unknown period")
	}
}

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"tracks":   KindTracks,
		"Artist":   KindArtists,
		" albums ": KindAlbums,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		if err != nil || got != want {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseKind("songs"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestTimestampDate(t *testing.T) {
	if got := TimestampDate("1700000000"); got != "2023-11-14" {
		t.Errorf("expected 2023-11-14, got %q", got)
	}
	if got := TimestampDate("soon"); got != "soon" {
		t.Errorf("expected passthrough for bad input, got %q", got)
	}
}
