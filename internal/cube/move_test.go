package cube

import "testing"

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    Move
		wantErr bool
	}{
		{"R", Move{Right, 1}, false},
		{"U2", Move{Up, 2}, false},
		{"F'", Move{Front, 3}, false},
		{"", Move{}, true},
		{"X", Move{}, true},
		{"R3", Move{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, f := range AllFaces {
		for turns := 1; turns <= 3; turns++ {
			m := Move{Face: f, Turns: turns}
			got, err := ParseMove(m.String())
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", m.String(), err)
			}
			if got != m {
				t.Errorf("round trip %v -> %q -> %v", m, m.String(), got)
			}
		}
	}
}

func TestMoveInverse(t *testing.T) {
	tests := []struct {
		in, want Move
	}{
		{Move{Up, 1}, Move{Up, 3}},
		{Move{Up, 2}, Move{Up, 2}},
		{Move{Up, 3}, Move{Up, 1}},
	}
	for _, tt := range tests {
		if got := tt.in.Inverse(); got != tt.want {
			t.Errorf("%v.Inverse() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMoves(t *testing.T) {
	got, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	want := []Move{{Right, 1}, {Up, 1}, {Right, 3}, {Up, 3}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
}
