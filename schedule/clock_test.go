package schedule

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"1:30 PM", 810},
		{"11:59 PM", 1439},
		{"9:00 AM", 540},
		{"12:30 AM", 30},
		{"12:30 PM", 750},
		{"3:04 pm", 904},
		{" 7:30 PM ", 1170},
	}

	for _, c := range cases {
		got, err := ParseClock(c.label)
		if err != nil {
			t.Fatalf("ParseClock(%q) returned error: %v", c.label, err)
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.label, got, c.want)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	bad := []string{"", "7:30", "25:00 PM", "0:15 AM", "13:00 PM", "7:60 AM", "noon"}
	for _, label := range bad {
		if _, err := ParseClock(label); err == nil {
			t.Errorf("ParseClock(%q) accepted malformed input", label)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 1, 30, 540, 719, 720, 810, 900, 1170, 1439} {
		label := FormatClock(minutes)
		back, err := ParseClock(label)
		if err != nil {
			t.Fatalf("ParseClock(FormatClock(%d)=%q) error: %v", minutes, label, err)
		}
		if back != minutes {
			t.Errorf("round trip %d -> %q -> %d", minutes, label, back)
		}
	}
}

func TestFormatClockLabels(t *testing.T) {
	cases := map[int]string{
		0:    "12:00 AM",
		720:  "12:00 PM",
		810:  "1:30 PM",
		1439: "11:59 PM",
		540:  "9:00 AM",
	}
	for minutes, want := range cases {
		if got := FormatClock(minutes); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", minutes, got, want)
		}
	}
}
