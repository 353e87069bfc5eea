package slug

import "testing"

func TestParameterize(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Learn Go", "learn-go"},
		{"Learn   Go", "learn-go"},
		{"  Learn Go!  ", "learn-go"},
		{"learn-go", "learn-go"},
		{"Pay A/V invoice #42", "pay-a-v-invoice-42"},
		{"UPPER", "upper"},
		{"---", ""},
		{"!!!", ""},
		{"", ""},
		{"42", "42"},
	}

	for _, c := range cases {
		if got := Parameterize(c.title); got != c.want {
			t.Errorf("Parameterize(%q) = %q, want %q", c.title, got, c.want)
		}
	}
}

func TestParameterizeIsIdempotent(t *testing.T) {
	titles := []string{"Learn Go", "Pay A/V invoice #42", "already-a-slug", "Trailing!!"}

	for _, title := range titles {
		once := Parameterize(title)
		twice := Parameterize(once)
		if once != twice {
			t.Errorf("Parameterize not idempotent for %q: %q then %q", title, once, twice)
		}
	}
}

func TestCandidate(t *testing.T) {
	if got := Candidate("learn-go", 1); got != "learn-go" {
		t.Errorf("first candidate should be the base, got %q", got)
	}
	if got := Candidate("learn-go", 2); got != "learn-go-2" {
		t.Errorf("second candidate = %q, want learn-go-2", got)
	}
	if got := Candidate("learn-go", 10); got != "learn-go-10" {
		t.Errorf("tenth candidate = %q, want learn-go-10", got)
	}
}
