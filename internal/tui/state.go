package tui

import (
	"strconv"

	"github.com/jfmyers9/fmnotes/pkg/lastfm"
)

// Section is one tab of the panel
type Section int

const (
	SectionRecent Section = iota
	SectionTopTracks
	SectionTopArtists
	SectionTopAlbums
)

// Sections lists the tabs in display order
var Sections = []Section{SectionRecent, SectionTopTracks, SectionTopArtists, SectionTopAlbums}

// Label returns the tab title
func (s Section) Label() string {
	switch s {
	case SectionTopTracks:
		return "Top Tracks"
	case SectionTopArtists:
		return "Top Artists"
	case SectionTopAlbums:
		return "Top Albums"
	default:
		return "Recent Scrobbles"
	}
}

// Kind returns the record kind of a top tab. The recent tab has none.
func (s Section) Kind() (lastfm.Kind, bool) {
	switch s {
	case SectionTopTracks:
		return lastfm.KindTracks, true
	case SectionTopArtists:
		return lastfm.KindArtists, true
	case SectionTopAlbums:
		return lastfm.KindAlbums, true
	}
	return 0, false
}

// Mode selects how a top tab queries: by period or by weekly chart range
type Mode int

const (
	ModePeriod Mode = iota
	ModeRange
)

// Modes lists the modes in dropdown order
var Modes = []Mode{ModePeriod, ModeRange}

func (m Mode) String() string {
	if m == ModeRange {
		return "From/To Date"
	}
	return "Period"
}

// Limit choices offered by the dropdowns
var (
	RecentLimits = []int{5, 10, 20, 50, 100}
	TopLimits    = []int{10, 20, 30, 50, 100}
)

const defaultLimit = 10

// State is the panel's selection state. It has no UI dependencies.
type State struct {
	Section Section
	Limit   int // Shared between tabs
	Mode    Mode
	Period  lastfm.Period
	Weeks   []lastfm.ChartRange // Oldest first
	Week    int                 // Index into Weeks

	weeksLoaded bool
}

// NewState returns the initial selection: recent tab, limit 10, 7day period
func NewState() State {
	return State{
		Section: SectionRecent,
		Limit:   defaultLimit,
		Mode:    ModePeriod,
		Period:  lastfm.Period7Day,
	}
}

// SetSection switches tabs. A limit the new tab does not offer snaps to
// the nearest offered value.
func (s *State) SetSection(sec Section) {
	s.Section = sec
	s.Limit = snapLimit(s.Limits(), s.Limit)
}

// Limits returns the limit choices for the active tab
func (s *State) Limits() []int {
	if s.Section == SectionRecent {
		return RecentLimits
	}
	return TopLimits
}

// LimitIndex returns the dropdown index of the current limit
func (s *State) LimitIndex() int {
	return indexOf(s.Limits(), snapLimit(s.Limits(), s.Limit))
}

// WeeksLoaded reports whether the chart list has been fetched
func (s *State) WeeksLoaded() bool {
	return s.weeksLoaded
}

// SetWeeks stores the chart list and selects the newest week.
// The list is only loaded once per panel.
func (s *State) SetWeeks(weeks []lastfm.ChartRange) {
	s.Weeks = weeks
	s.Week = len(weeks) - 1
	s.weeksLoaded = true
}

// SelectedWeek returns the chosen chart range
func (s *State) SelectedWeek() (lastfm.ChartRange, bool) {
	if s.Week < 0 || s.Week >= len(s.Weeks) {
		return lastfm.ChartRange{}, false
	}
	return s.Weeks[s.Week], true
}

// WeekLabels returns the dropdown labels for Weeks
func (s *State) WeekLabels() []string {
	labels := make([]string, len(s.Weeks))
	for i, w := range s.Weeks {
		labels[i] = w.Label()
	}
	return labels
}

// PeriodIndex returns the dropdown index of the current period
func (s *State) PeriodIndex() int {
	for i, p := range lastfm.Periods {
		if p == s.Period {
			return i
		}
	}
	return 0
}

func snapLimit(limits []int, limit int) int {
	for _, l := range limits {
		if l >= limit {
			return l
		}
	}
	return limits[len(limits)-1]
}

func indexOf(limits []int, limit int) int {
	for i, l := range limits {
		if l == limit {
			return i
		}
	}
	return 0
}

func limitLabels(limits []int) []string {
	labels := make([]string, len(limits))
	for i, l := range limits {
		labels[i] = strconv.Itoa(l)
	}
	return labels
}
