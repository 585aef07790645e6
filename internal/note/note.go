// Package note assembles Last.fm listening data into markdown notes and
// writes them into a vault.
package note

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/jfmyers9/fmnotes/internal/markdown"
	"github.com/jfmyers9/fmnotes/internal/notelog"
	"github.com/jfmyers9/fmnotes/pkg/lastfm"
	"github.com/rs/zerolog"
)

// Source is the subset of lastfm.UserService the assembler reads from.
type Source interface {
	GetRecentTracks(ctx context.Context, limit int) ([]lastfm.Record, error)
	Top(ctx context.Context, kind lastfm.Kind, period lastfm.Period, limit int) ([]lastfm.Record, error)
	Weekly(ctx context.Context, kind lastfm.Kind, rng lastfm.ChartRange) ([]lastfm.Record, error)
}

// History records created notes. *notelog.Log satisfies it.
type History interface {
	Add(ctx context.Context, e notelog.Entry) (int64, error)
}

// Operation names, as stored in the note history.
const (
	OpRecent = "recent"
	OpTop    = "top"
	OpWeekly = "weekly"
)

// Note is a rendered note, written or not.
type Note struct {
	Path      string // File name, vault-relative path once written
	Title     string // H1 text without the leading "# "
	Content   string // Full file content
	Operation string
	Kind      lastfm.Kind
	Span      string // Period token or chart range label
	Items     int
}

// Options configures an Assembler.
type Options struct {
	Source      Source
	Vault       Vault
	Notifier    Notifier       // Optional
	History     History        // Optional
	FrontMatter bool           // Prepend YAML front matter
	User        string         // Recorded in front matter
	Logger      zerolog.Logger // Optional, defaults to a no-op logger
	Now         func() time.Time
}

// Assembler fetches, renders and writes notes.
type Assembler struct {
	source      Source
	vault       Vault
	notifier    Notifier
	history     History
	frontMatter bool
	user        string
	logger      zerolog.Logger
	now         func() time.Time
}

// New creates an Assembler
func New(opts Options) *Assembler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Assembler{
		source:      opts.Source,
		vault:       opts.Vault,
		notifier:    opts.Notifier,
		history:     opts.History,
		frontMatter: opts.FrontMatter,
		user:        opts.User,
		logger:      opts.Logger.With().Str("component", "note").Logger(),
		now:         now,
	}
}

// PreviewRecentNote renders the recent scrobbles note without writing it.
func (a *Assembler) PreviewRecentNote(ctx context.Context, limit int) (*Note, error) {
	tracks, err := a.source.GetRecentTracks(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent tracks: %w", err)
	}

	date := a.today()
	n := &Note{
		Title:     "Recent Scrobbles — " + date,
		Operation: OpRecent,
		Kind:      lastfm.KindTracks,
		Items:     len(tracks),
	}
	n.Path = fmt.Sprintf("LastFM Recent Scrobbles %s.md", date)
	blocks := markdown.Blocks(lastfm.KindTracks, tracks, markdown.Recent)
	if err := a.compose(n, blocks, frontMatter{}); err != nil {
		return nil, err
	}
	return n, nil
}

// CreateRecentNote writes a note of the user's most recent scrobbles.
func (a *Assembler) CreateRecentNote(ctx context.Context, limit int) (*Note, error) {
	n, err := a.PreviewRecentNote(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := a.write(ctx, n); err != nil {
		return nil, err
	}
	a.notify("Last.fm note created!")
	return n, nil
}

// PreviewTopNote renders a top-by-period note without writing it.
func (a *Assembler) PreviewTopNote(ctx context.Context, kind lastfm.Kind, period lastfm.Period, limit int) (*Note, error) {
	records, err := a.source.Top(ctx, kind, period, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top %s: %w", kind, err)
	}

	date := a.today()
	n := &Note{
		Title:     fmt.Sprintf("Top %s — %s (%s)", kind, period, date),
		Operation: OpTop,
		Kind:      kind,
		Span:      string(period),
		Items:     len(records),
	}
	n.Path = fmt.Sprintf("LastFM Top %s %s %s.md", kind, period, date)
	blocks := markdown.Blocks(kind, records, markdown.Default)
	if err := a.compose(n, blocks, frontMatter{Period: string(period)}); err != nil {
		return nil, err
	}
	return n, nil
}

// CreateTopNote writes a note of the user's top records over period.
func (a *Assembler) CreateTopNote(ctx context.Context, kind lastfm.Kind, period lastfm.Period, limit int) (*Note, error) {
	n, err := a.PreviewTopNote(ctx, kind, period, limit)
	if err != nil {
		return nil, err
	}
	if err := a.write(ctx, n); err != nil {
		return nil, err
	}
	a.notify(fmt.Sprintf("Note created: Top %s (%s)", kind, period))
	return n, nil
}

// PreviewWeeklyNote renders a weekly chart note without writing it.
func (a *Assembler) PreviewWeeklyNote(ctx context.Context, kind lastfm.Kind, rng lastfm.ChartRange) (*Note, error) {
	records, err := a.source.Weekly(ctx, kind, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly %s chart: %w", kind, err)
	}

	from, to := rng.FromDate(), rng.ToDate()
	n := &Note{
		Title:     fmt.Sprintf("Weekly %s — %s → %s", kind, from, to),
		Operation: OpWeekly,
		Kind:      kind,
		Span:      rng.Label(),
		Items:     len(records),
	}
	n.Path = fmt.Sprintf("LastFM Weekly %s %s to %s.md", kind, from, to)
	blocks := markdown.Blocks(kind, records, markdown.Default)
	if err := a.compose(n, blocks, frontMatter{From: from, To: to}); err != nil {
		return nil, err
	}
	return n, nil
}

// CreateWeeklyNote writes the chart of kind for the week rng.
func (a *Assembler) CreateWeeklyNote(ctx context.Context, kind lastfm.Kind, rng lastfm.ChartRange) (*Note, error) {
	n, err := a.PreviewWeeklyNote(ctx, kind, rng)
	if err != nil {
		return nil, err
	}
	if err := a.write(ctx, n); err != nil {
		return nil, err
	}
	a.notify(fmt.Sprintf("Weekly %s note created!", kind))
	return n, nil
}

// Body builds "# title", a blank line, the blocks and a trailing newline.
func Body(title, blocks string) string {
	return "# " + title + "\n\n" + blocks + "\n"
}

// compose fills n.Content. fm carries the operation specific front matter
// fields; the rest are taken from n.
func (a *Assembler) compose(n *Note, blocks string, fm frontMatter) error {
	body := Body(n.Title, blocks)
	if !a.frontMatter {
		n.Content = body
		return nil
	}

	fm.Source = "last.fm"
	fm.User = a.user
	fm.Operation = n.Operation
	fm.Kind = n.Kind.String()
	fm.Created = a.today()
	fm.Items = n.Items

	header, err := fm.render()
	if err != nil {
		return err
	}
	n.Content = header + "\n" + body
	return nil
}

// write places n in the notes folder and records it in the history.
func (a *Assembler) write(ctx context.Context, n *Note) error {
	folder, err := a.vault.EnsureFolder()
	if err != nil {
		return err
	}
	n.Path = path.Join(folder, n.Path)

	if err := a.vault.CreateFile(n.Path, n.Content); err != nil {
		return err
	}

	a.logger.Info().
		Str("path", n.Path).
		Str("operation", n.Operation).
		Int("items", n.Items).
		Msg("Note created")

	if a.history != nil {
		_, err := a.history.Add(ctx, notelog.Entry{
			Path:      n.Path,
			Operation: n.Operation,
			Kind:      n.Kind.String(),
			Span:      n.Span,
			Items:     n.Items,
			CreatedAt: a.now(),
		})
		if err != nil {
			// The note is already on disk; a missing history row is not fatal
			a.logger.Warn().Err(err).Str("path", n.Path).Msg("Failed to record note history")
		}
	}

	return nil
}

func (a *Assembler) notify(msg string) {
	if a.notifier != nil {
		a.notifier.Notify(msg)
	}
}

// today is the query date used in titles and filenames, in UTC.
func (a *Assembler) today() string {
	return a.now().UTC().Format("2006-01-02")
}
