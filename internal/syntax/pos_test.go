package syntax

import "testing"

func TestPosString(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pos
		wantStr string
	}{
		{
			name:    "with filename",
			pos:     NewPos("main.rs", 10, 5),
			wantStr: "main.rs:10:5",
		},
		{
			name:    "without filename",
			pos:     NewPos("", 10, 5),
			wantStr: "10:5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.wantStr {
				t.Errorf("Pos.String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestPosIsValid(t *testing.T) {
	tests := []struct {
		name  string
		pos   Pos
		valid bool
	}{
		{"valid position", NewPos("main.rs", 1, 1), true},
		{"no filename", NewPos("", 100, 50), true},
		{"zero line", NewPos("main.rs", 0, 1), false},
		{"zero value", Pos{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("Pos.IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPosGetters(t *testing.T) {
	pos := NewPos("main.rs", 42, 13)

	if got := pos.Line(); got != 42 {
		t.Errorf("Pos.Line() = %d, want 42", got)
	}
	if got := pos.Col(); got != 13 {
		t.Errorf("Pos.Col() = %d, want 13", got)
	}
	if got := pos.Filename(); got != "main.rs" {
		t.Errorf("Pos.Filename() = %q, want %q", got, "main.rs")
	}
}

func TestParsePos(t *testing.T) {
	tests := []struct {
		in   string
		want Pos
	}{
		{"", Pos{}},
		{"3:7", NewPos("", 3, 7)},
		{"main.rs:3:7", NewPos("main.rs", 3, 7)},
		{`C:\src\main.rs:12:1`, NewPos(`C:\src\main.rs`, 12, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePos(tt.in)
			if err != nil {
				t.Fatalf("ParsePos(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePos(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePosErrors(t *testing.T) {
	for _, in := range []string{"12", "a:b", "main.rs:x:1", "main.rs:1:"} {
		if _, err := ParsePos(in); err == nil {
			t.Errorf("ParsePos(%q) succeeded, want error", in)
		}
	}
}

func TestParsePosRoundTrip(t *testing.T) {
	for _, pos := range []Pos{NewPos("lib.rs", 1, 1), NewPos("", 99, 4)} {
		got, err := ParsePos(pos.String())
		if err != nil {
			t.Fatalf("ParsePos(%q): %v", pos, err)
		}
		if got != pos {
			t.Errorf("ParsePos(%q) = %v, want %v", pos, got, pos)
		}
	}
}
