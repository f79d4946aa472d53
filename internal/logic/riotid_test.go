package logic

import (
	"errors"
	"testing"
)

func TestParseRiotID(t *testing.T) {
	tests := []struct {
		input   string
		want    RiotID
		wantErr bool
	}{
		{"Player#1234", RiotID{Name: "Player", Tag: "1234"}, false},
		{"  Spaced Name#EUW  ", RiotID{Name: "Spaced Name", Tag: "EUW"}, false},
		{"Player1234", RiotID{}, true},
		{"Player#", RiotID{}, true},
		{"#1234", RiotID{}, true},
		{"A#B#C", RiotID{}, true},
		{"", RiotID{}, true},
	}

	for _, tt := range tests {
		got, err := ParseRiotID(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRiotID) {
				t.Errorf("ParseRiotID(%q) error = %v, want ErrInvalidRiotID", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRiotID(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRiotID(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestRiotIDString(t *testing.T) {
	if got := (RiotID{Name: "Player", Tag: "1234"}).String(); got != "Player#1234" {
		t.Errorf("String() = %q", got)
	}
}
