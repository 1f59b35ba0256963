package span

import "testing"

func TestJoinAndCovers(t *testing.T) {
	a, b := New(2, 4), New(7, 9)
	j := Join(a, b)
	if j != New(2, 9) {
		t.Fatalf("expected 2..9, got %s", j)
	}
	if !j.Covers(a) || !j.Covers(b) {
		t.Error("joined span does not cover its parts")
	}
	if a.Covers(j) {
		t.Error("part covers the joined span")
	}
	if j.Len() != 7 {
		t.Errorf("expected length 7, got %d", j.Len())
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		source string
		offset int
		line   int
		column int
	}{
		{"", 0, 1, 1},
		{"abc", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"a\nbcd efg", 4, 2, 3},
		{"a\n\n", 3, 3, 1},
		{"é = 1", 3, 1, 3},
		{"x", 10, 1, 2},
	}
	for _, tt := range tests {
		pos := Locate(tt.source, tt.offset)
		if pos.Line != tt.line || pos.Column != tt.column {
			t.Errorf("Locate(%q, %d): expected %d:%d, got %s", tt.source, tt.offset, tt.line, tt.column, pos)
		}
	}
}
