package cmd

import (
	"testing"

	"github.com/jfmyers9/fmnotes/pkg/lastfm"
)

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"unix timestamp", "1699747200", "1699747200", false},
		{"date", "2023-11-12", "1699747200", false},
		{"padded", "  1700352000 ", "1700352000", false},
		{"empty", "", "", true},
		{"garbage", "last week", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBoundary(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBoundary(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("parseBoundary(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSelectWeek(t *testing.T) {
	weeks := []lastfm.ChartRange{
		{From: "1", To: "2"},
		{From: "2", To: "3"},
		{From: "3", To: "4"},
	}

	tests := []struct {
		name     string
		index    int
		expected lastfm.ChartRange
		wantErr  bool
	}{
		{"newest by default", -1, weeks[2], false},
		{"first", 0, weeks[0], false},
		{"second newest", -2, weeks[1], false},
		{"past the end", 3, lastfm.ChartRange{}, true},
		{"before the start", -4, lastfm.ChartRange{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectWeek(weeks, tt.index)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectWeek(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("selectWeek(%d) = %+v, expected %+v", tt.index, got, tt.expected)
			}
		})
	}

	if _, err := selectWeek(nil, -1); err == nil {
		t.Error("expected error for empty chart list")
	}
}
