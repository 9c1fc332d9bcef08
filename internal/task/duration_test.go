package task

import "testing"

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"30m", 30},
		{"2h", 120},
		{"1d", 1440},
		{"1w", 10080},
		{"45", 45},
		{"  2H ", 120},
		{"3 d", 4320},
		{"2 hours", 120},
		{"1 week", 10080},
		{"90 minutes", 90},
		{"1h 30m", 90},
		{"1d 2h", 1560},
		{"1w 3d", 14400},
	}

	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		if err != nil {
			t.Errorf("ParseDuration(%q) err=%v, want nil", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDuration(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseDuration_Rejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"0",
		"0h",
		"-5",
		"-5m",
		"abc",
		"1.5h",
		"2x",
		"h",
		"2h30m",
	}

	for _, in := range cases {
		if got, err := ParseDuration(in); err == nil {
			t.Errorf("ParseDuration(%q)=%d, want error", in, got)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, ""},
		{-10, ""},
		{1, "1 minute"},
		{45, "45 minutes"},
		{60, "1 hour"},
		{120, "2 hours"},
		{90, "1h 30m"},
		{1440, "1 day"},
		{4320, "3 days"},
		{1500, "1d 1h"},
		{10080, "1 week"},
		{11520, "1w 1d"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%d)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	// Every rendering FormatDuration produces must parse back to the same
	// value, including the compact fallback forms. The edit form pre-fills
	// its inputs with FormatDuration output, so an unchanged save depends
	// on this.
	for _, minutes := range []int{45, 60, 90, 120, 1440, 1500, 4320, 10080, 11520, 20160} {
		text := FormatDuration(minutes)
		got, err := ParseDuration(text)
		if err != nil {
			t.Errorf("ParseDuration(%q) err=%v, want nil", text, err)
			continue
		}
		if got != minutes {
			t.Errorf("ParseDuration(FormatDuration(%d))=%d via %q, want %d", minutes, got, text, minutes)
		}
	}
}
