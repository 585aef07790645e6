// Package tui implements the interactive terminal panel for browsing
// listening history and creating notes.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jfmyers9/fmnotes/internal/note"
	"github.com/jfmyers9/fmnotes/pkg/lastfm"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

// Notices shown when a request fails
const (
	NoticeFetchRecent  = "Error fetching recent tracks."
	NoticeFetchTop     = "Error fetching top data."
	NoticeFetchWeekly  = "Error fetching weekly chart."
	NoticeCreateRecent = "Error creating recent tracks note."
	NoticeCreateTop    = "Error creating top note."
	NoticeCreateWeekly = "Error creating weekly note."
)

// Fetcher is the read side of the panel. *lastfm.UserService satisfies it.
type Fetcher interface {
	GetRecentTracks(ctx context.Context, limit int) ([]lastfm.Record, error)
	Top(ctx context.Context, kind lastfm.Kind, period lastfm.Period, limit int) ([]lastfm.Record, error)
	Weekly(ctx context.Context, kind lastfm.Kind, rng lastfm.ChartRange) ([]lastfm.Record, error)
	GetWeeklyChartList(ctx context.Context) ([]lastfm.ChartRange, error)
}

// Creator writes notes. *note.Assembler satisfies it.
type Creator interface {
	CreateRecentNote(ctx context.Context, limit int) (*note.Note, error)
	CreateTopNote(ctx context.Context, kind lastfm.Kind, period lastfm.Period, limit int) (*note.Note, error)
	CreateWeeklyNote(ctx context.Context, kind lastfm.Kind, rng lastfm.ChartRange) (*note.Note, error)
}

// Panel is the tabbed note panel
type Panel struct {
	app     *tview.Application
	tabs    *tview.TextView
	form    *tview.Form
	results *tview.TextView
	status  *tview.TextView

	fetcher Fetcher
	creator Creator
	logger  zerolog.Logger
	ctx     context.Context

	// Guards state, created and message. Fetches are not serialized; the
	// last response to arrive wins.
	mu           sync.Mutex
	state        State
	loadingWeeks bool
	created      *note.Note
	message      string
}

// New creates a panel reading from fetcher
func New(fetcher Fetcher, logger zerolog.Logger) *Panel {
	p := &Panel{
		app:     tview.NewApplication(),
		fetcher: fetcher,
		logger:  logger.With().Str("component", "panel").Logger(),
		ctx:     context.Background(),
		state:   NewState(),
	}
	p.setupUI()
	return p
}

// SetCreator sets the note writer used by the Create Note buttons
func (p *Panel) SetCreator(creator Creator) {
	p.creator = creator
}

// Notify records a success message to show after the panel closes
func (p *Panel) Notify(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.message = msg
}

// Created returns the note written before the panel closed, if any,
// and its success message.
func (p *Panel) Created() (*note.Note, string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created, p.message
}

// Run shows the panel until the user quits or a note is created
func (p *Panel) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	p.ctx = ctx

	go func() {
		<-ctx.Done()
		p.app.Stop()
	}()

	if err := p.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// setupUI creates the UI layout
func (p *Panel) setupUI() {
	p.tabs = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	p.form = tview.NewForm()
	p.form.SetBorder(true).
		SetTitleAlign(tview.AlignLeft)

	p.results = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	p.results.SetBorder(true).
		SetTitle(" Results ").
		SetTitleAlign(tview.AlignLeft)

	p.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(p.tabs, 1, 0, false).
		AddItem(p.form, 11, 0, true).
		AddItem(p.results, 0, 1, false).
		AddItem(p.status, 1, 0, false)

	p.app.SetInputCapture(p.handleKeyEvent)
	p.app.SetRoot(flex, true)

	p.render()
	p.setHelp()
}

// handleKeyEvent switches tabs with 1-4 and quits with q
func (p *Panel) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape {
		p.app.Stop()
		return nil
	}

	switch r := event.Rune(); r {
	case 'q', 'Q':
		p.app.Stop()
		return nil
	case '1', '2', '3', '4':
		p.mu.Lock()
		p.state.SetSection(Sections[r-'1'])
		p.mu.Unlock()
		p.results.Clear()
		p.render()
		return nil
	}
	return event
}

// render rebuilds the tab bar and the form for the active tab.
// Must be called from the UI goroutine. Dropdowns invoke their callbacks
// while being built, so the form is built from a copy of the state with
// p.mu released.
func (p *Panel) render() {
	p.mu.Lock()
	st := p.state
	p.mu.Unlock()

	p.renderTabs(st.Section)
	p.form.Clear(true)
	p.form.SetTitle(" " + st.Section.Label() + " ")

	kind, ok := st.Section.Kind()
	if !ok {
		p.renderRecentForm(&st)
		return
	}
	p.renderTopForm(&st, kind)
}

func (p *Panel) renderTabs(active Section) {
	var sb strings.Builder
	for i, sec := range Sections {
		if i > 0 {
			sb.WriteString("  ")
		}
		if sec == active {
			sb.WriteString(fmt.Sprintf("[black:yellow] %d %s [-:-]", i+1, sec.Label()))
		} else {
			sb.WriteString(fmt.Sprintf("[gray] %d %s [-]", i+1, sec.Label()))
		}
	}
	p.tabs.SetText(sb.String())
}

func (p *Panel) renderRecentForm(st *State) {
	p.form.AddDropDown("Limit", limitLabels(RecentLimits), st.LimitIndex(), func(_ string, index int) {
		p.setLimit(RecentLimits, index)
	})
	p.form.AddButton("Fetch", p.fetchRecent)
	p.form.AddButton("Create Note", p.createRecent)
}

func (p *Panel) renderTopForm(st *State, kind lastfm.Kind) {
	modes := make([]string, len(Modes))
	for i, m := range Modes {
		modes[i] = m.String()
	}
	p.form.AddDropDown("Mode", modes, int(st.Mode), func(_ string, index int) {
		p.setMode(Modes[index])
	})

	if st.Mode == ModePeriod {
		periods := make([]string, len(lastfm.Periods))
		for i, period := range lastfm.Periods {
			periods[i] = string(period)
		}
		p.form.AddDropDown("Period", periods, st.PeriodIndex(), func(_ string, index int) {
			p.mu.Lock()
			p.state.Period = lastfm.Periods[index]
			p.mu.Unlock()
		})
		p.form.AddDropDown("Limit", limitLabels(TopLimits), st.LimitIndex(), func(_ string, index int) {
			p.setLimit(TopLimits, index)
		})
		p.form.AddButton("Fetch", func() { p.fetchTop(kind) })
		p.form.AddButton("Create Note", func() { p.createTop(kind) })
		return
	}

	if !st.WeeksLoaded() {
		p.form.AddTextView("Weekly period", "Loading weekly charts...", 0, 1, true, false)
		p.mu.Lock()
		start := !p.loadingWeeks
		p.loadingWeeks = true
		p.mu.Unlock()
		if start {
			go p.loadWeeks()
		}
		return
	}

	if len(st.Weeks) == 0 {
		p.form.AddTextView("Weekly period", "No weekly charts available", 0, 1, true, false)
		return
	}

	p.form.AddDropDown("Weekly period", st.WeekLabels(), st.Week, func(_ string, index int) {
		p.mu.Lock()
		p.state.Week = index
		p.mu.Unlock()
	})
	p.form.AddButton("Fetch", func() { p.fetchWeekly(kind) })
	p.form.AddButton("Create Note", func() { p.createWeekly(kind) })
}

func (p *Panel) setLimit(limits []int, index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Limit = limits[index]
}

// setMode re-renders only on an actual change, since dropdowns report
// their initial option when built.
func (p *Panel) setMode(mode Mode) {
	p.mu.Lock()
	changed := p.state.Mode != mode
	p.state.Mode = mode
	p.mu.Unlock()

	if changed {
		p.app.QueueUpdateDraw(func() {
			p.results.Clear()
			p.render()
		})
	}
}

// loadWeeks fetches the chart list once and selects the newest week
func (p *Panel) loadWeeks() {
	weeks, err := p.fetcher.GetWeeklyChartList(p.ctx)

	p.app.QueueUpdateDraw(func() {
		p.mu.Lock()
		p.loadingWeeks = false
		if err != nil {
			p.state.Mode = ModePeriod
		} else {
			p.state.SetWeeks(weeks)
		}
		p.mu.Unlock()

		p.render()
		if err != nil {
			p.logger.Error().Err(err).Msg("Failed to load weekly chart list")
			p.showNotice(NoticeFetchWeekly)
		}
	})
}

func (p *Panel) fetchRecent() {
	p.mu.Lock()
	limit := p.state.Limit
	p.mu.Unlock()

	p.startFetch()
	go func() {
		tracks, err := p.fetcher.GetRecentTracks(p.ctx, limit)
		p.publish(err, NoticeFetchRecent, func(width int) []string {
			return RecentPreview(tracks, width)
		})
	}()
}

func (p *Panel) fetchTop(kind lastfm.Kind) {
	p.mu.Lock()
	period, limit := p.state.Period, p.state.Limit
	p.mu.Unlock()

	p.startFetch()
	go func() {
		records, err := p.fetcher.Top(p.ctx, kind, period, limit)
		p.publish(err, NoticeFetchTop, func(width int) []string {
			return ChartPreview(kind, records, width)
		})
	}()
}

func (p *Panel) fetchWeekly(kind lastfm.Kind) {
	p.mu.Lock()
	week, ok := p.state.SelectedWeek()
	p.mu.Unlock()
	if !ok {
		p.showNotice(NoticeFetchWeekly)
		return
	}

	p.startFetch()
	go func() {
		records, err := p.fetcher.Weekly(p.ctx, kind, week)
		p.publish(err, NoticeFetchWeekly, func(width int) []string {
			return ChartPreview(kind, records, width)
		})
	}()
}

// startFetch shows the progress message. Must be called from the UI goroutine.
func (p *Panel) startFetch() {
	p.mu.Lock()
	msg := FetchingMessage(&p.state)
	p.mu.Unlock()

	p.results.SetText(tview.Escape(msg))
	p.setHelp()
}

// publish renders a finished fetch, or its notice on failure
func (p *Panel) publish(err error, notice string, lines func(width int) []string) {
	p.app.QueueUpdateDraw(func() {
		if err != nil {
			p.logger.Error().Err(err).Msg(notice)
			p.results.Clear()
			p.showNotice(notice)
			return
		}

		_, _, width, _ := p.results.GetInnerRect()
		p.results.SetText(tview.Escape(strings.Join(lines(width), "\n")))
		p.results.ScrollToBeginning()
	})
}

func (p *Panel) createRecent() {
	p.mu.Lock()
	limit := p.state.Limit
	p.mu.Unlock()

	p.create(NoticeCreateRecent, func(ctx context.Context) (*note.Note, error) {
		return p.creator.CreateRecentNote(ctx, limit)
	})
}

func (p *Panel) createTop(kind lastfm.Kind) {
	p.mu.Lock()
	period, limit := p.state.Period, p.state.Limit
	p.mu.Unlock()

	p.create(NoticeCreateTop, func(ctx context.Context) (*note.Note, error) {
		return p.creator.CreateTopNote(ctx, kind, period, limit)
	})
}

func (p *Panel) createWeekly(kind lastfm.Kind) {
	p.mu.Lock()
	week, ok := p.state.SelectedWeek()
	p.mu.Unlock()
	if !ok {
		p.showNotice(NoticeCreateWeekly)
		return
	}

	p.create(NoticeCreateWeekly, func(ctx context.Context) (*note.Note, error) {
		return p.creator.CreateWeeklyNote(ctx, kind, week)
	})
}

// create writes a note off the UI goroutine and closes the panel on success
func (p *Panel) create(notice string, write func(ctx context.Context) (*note.Note, error)) {
	if p.creator == nil {
		p.showNotice(notice)
		return
	}

	p.status.SetText("[yellow]Creating note...[-]")
	go func() {
		n, err := write(p.ctx)
		if err != nil {
			p.app.QueueUpdateDraw(func() {
				p.logger.Error().Err(err).Msg(notice)
				p.showNotice(notice)
			})
			return
		}

		p.mu.Lock()
		p.created = n
		p.mu.Unlock()
		p.app.Stop()
	}()
}

// showNotice displays msg in the status bar. Must be called from the UI goroutine.
func (p *Panel) showNotice(msg string) {
	p.status.SetText(fmt.Sprintf("[red]%s[-]", tview.Escape(msg)))
}

func (p *Panel) setHelp() {
	p.status.SetText("[gray]1-4:tabs  tab:next field  enter:select  q:quit[-]")
}
