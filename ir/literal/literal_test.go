package literal

import "testing"

func TestParseInt(t *testing.T) {
	lit, err := Parse("-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lit.Int == nil || *lit.Int != -3 {
		t.Fatalf("got %+v, want Int(-3)", lit)
	}
}

func TestParseFloat(t *testing.T) {
	lit, err := Parse("3.2e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lit.Float == nil || *lit.Float != 32 {
		t.Fatalf("got %+v, want Float(32)", lit)
	}
}

func TestParseString(t *testing.T) {
	lit, err := Parse(`"[0-9]+"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lit.Str == nil || *lit.Str != "[0-9]+" {
		t.Fatalf("got %+v, want Str([0-9]+)", lit)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	cases := []interface{}{int64(-3), float64(32), "[0-9]+", true}

	for _, c := range cases {
		raw := Format(c)

		if _, err := Parse(raw); err != nil {
			t.Fatalf("round trip of %v (%q) failed: %v", c, raw, err)
		}
	}
}
