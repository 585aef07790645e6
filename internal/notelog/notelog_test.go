package notelog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func createTestLog(t *testing.T) *Log {
	t.Helper()

	l, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create log: %v", err)
	}

	t.Cleanup(func() {
		l.Close()
	})

	return l
}

func TestOpen(t *testing.T) {
	l := createTestLog(t)

	count, err := l.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty log, got %d entries", count)
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")

	l, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open file log: %v", err)
	}
	if _, err := l.Add(context.Background(), Entry{Path: "a.md", Operation: "recent"}); err != nil {
		t.Fatalf("failed to add: %v", err)
	}
	l.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	count, err := reopened.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 persisted entry, got %d", count)
	}
}

func TestAddAndList(t *testing.T) {
	l := createTestLog(t)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	entries := []Entry{
		{Path: "LastFM/a.md", Operation: "recent", Kind: "tracks", Items: 10, CreatedAt: base},
		{Path: "LastFM/b.md", Operation: "top", Kind: "artists", Span: "7day", Items: 5, CreatedAt: base.Add(time.Minute)},
		{Path: "LastFM/c.md", Operation: "weekly", Kind: "albums", Span: "2023-11-12 → 2023-11-19", Items: 3, CreatedAt: base.Add(2 * time.Minute)},
	}

	for _, e := range entries {
		id, err := l.Add(ctx, e)
		if err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
		if id == 0 {
			t.Error("expected non-zero id")
		}
	}

	got, err := l.List(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	if got[0].Path != "LastFM/c.md" || got[2].Path != "LastFM/a.md" {
		t.Errorf("expected newest first, got %s ... %s", got[0].Path, got[2].Path)
	}
	if got[0].Span != "2023-11-12 → 2023-11-19" {
		t.Errorf("unexpected span %q", got[0].Span)
	}
	if got[1].Kind != "artists" || got[1].Items != 5 {
		t.Errorf("unexpected entry %+v", got[1])
	}
	if !got[2].CreatedAt.Equal(base) {
		t.Errorf("expected created at %v, got %v", base, got[2].CreatedAt)
	}

	limited, err := l.List(ctx, 2)
	if err != nil {
		t.Fatalf("failed to list with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 entries, got %d", len(limited))
	}
}

func TestAdd_DefaultsCreatedAt(t *testing.T) {
	l := createTestLog(t)
	ctx := context.Background()

	before := time.Now().Add(-time.Second)
	if _, err := l.Add(ctx, Entry{Path: "x.md", Operation: "recent"}); err != nil {
		t.Fatalf("failed to add: %v", err)
	}

	got, err := l.List(ctx, 1)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].CreatedAt.Before(before) {
		t.Errorf("expected created at to default to now, got %v", got[0].CreatedAt)
	}
}

func TestCleanup(t *testing.T) {
	l := createTestLog(t)
	ctx := context.Background()

	old := Entry{Path: "old.md", Operation: "top", CreatedAt: time.Now().Add(-48 * time.Hour)}
	fresh := Entry{Path: "fresh.md", Operation: "top", CreatedAt: time.Now()}

	for _, e := range []Entry{old, fresh} {
		if _, err := l.Add(ctx, e); err != nil {
			t.Fatalf("failed to add: %v", err)
		}
	}

	deleted, err := l.Cleanup(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("failed to cleanup: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", deleted)
	}

	got, err := l.List(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(got) != 1 || got[0].Path != "fresh.md" {
		t.Errorf("expected only fresh entry, got %+v", got)
	}
}
