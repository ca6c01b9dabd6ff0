package fop_test

import (
	"testing"

	"github.com/jrazmi/taskdesk/core/scaffolding/fop"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		size    string
		want    fop.Page
		wantErr bool
	}{
		{"defaults", "", "", fop.Page{Number: 1, Size: 20}, false},
		{"explicit values", "3", "50", fop.Page{Number: 3, Size: 50}, false},
		{"size clamped to max", "1", "150", fop.Page{Number: 1, Size: 100}, false},
		{"zero page rejected", "0", "", fop.Page{}, true},
		{"negative page rejected", "-1", "", fop.Page{}, true},
		{"zero size rejected", "1", "0", fop.Page{}, true},
		{"non numeric page", "abc", "", fop.Page{}, true},
		{"non numeric size", "1", "ten", fop.Page{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fop.ParsePage(tt.number, tt.size)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		page fop.Page
		want int
	}{
		{fop.Page{Number: 1, Size: 20}, 0},
		{fop.Page{Number: 2, Size: 10}, 10},
		{fop.Page{Number: 5, Size: 100}, 400},
	}

	for _, tt := range tests {
		if got := tt.page.Offset(); got != tt.want {
			t.Errorf("page %+v: got offset %d, want %d", tt.page, got, tt.want)
		}
	}
}
