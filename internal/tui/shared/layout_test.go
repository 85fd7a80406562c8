package shared

import (
	"strings"
	"testing"
)

func TestCenterContent(t *testing.T) {
	out := CenterContent("a\nb", 6)
	lines := strings.Split(out, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	if lines[2] != "a" || lines[3] != "b" {
		t.Errorf("expected content on lines 2-3, got %q", lines)
	}
}

func TestPinToBottom(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		height  int
		want    []string
	}{
		{
			name:    "base shows above overlay",
			base:    "1\n2\n3\n4",
			overlay: "x\ny",
			height:  4,
			want:    []string{"1", "2", "x", "y"},
		},
		{
			name:    "short base is padded",
			base:    "1",
			overlay: "x",
			height:  3,
			want:    []string{"1", "", "x"},
		},
		{
			name:    "long base is cut",
			base:    "1\n2\n3\n4\n5",
			overlay: "x",
			height:  3,
			want:    []string{"1", "2", "x"},
		},
		{
			name:    "tall overlay keeps its bottom",
			base:    "",
			overlay: "a\nb\nc",
			height:  2,
			want:    []string{"b", "c"},
		},
	}

	for _, tt := range tests {
		got := strings.Split(PinToBottom(tt.base, tt.overlay, tt.height), "\n")
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestPinToBottom_ZeroHeight(t *testing.T) {
	if got := PinToBottom("a", "b", 0); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
