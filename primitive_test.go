package pkombi

import "testing"

func TestChar(t *testing.T) {
	tests := []struct {
		input  string
		match  bool
		pos    int
		reason Reason
	}{
		{"abc", true, 1, 0},
		{"bbc", false, 0, UnexpectedChar},
		{"", false, 0, EndOfInput},
	}

	p := Char('a')
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Run(p, tt.input)
			if res.Matched() != tt.match {
				t.Fatalf("Matched() = %v, want %v", res.Matched(), tt.match)
			}
			if tt.match {
				if res.Value() != 'a' {
					t.Errorf("Value() = %q, want 'a'", res.Value())
				}
				if res.Next().Pos() != tt.pos {
					t.Errorf("Next().Pos() = %d, want %d", res.Next().Pos(), tt.pos)
				}
				return
			}
			f := res.Failure()
			if f.At.Pos() != tt.pos {
				t.Errorf("failure at %d, want %d", f.At.Pos(), tt.pos)
			}
			if f.Reason != tt.reason {
				t.Errorf("Reason = %v, want %v", f.Reason, tt.reason)
			}
		})
	}
}

func TestDigit(t *testing.T) {
	tests := []struct {
		input string
		match bool
		value int
	}{
		{"0", true, 0},
		{"9x", true, 9},
		{"5", true, 5},
		{"x", false, 0},
		{"/", false, 0}, // byte just below '0'
		{":", false, 0}, // byte just above '9'
		{"", false, 0},
	}

	p := Digit()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Run(p, tt.input)
			if res.Matched() != tt.match {
				t.Fatalf("Matched() = %v, want %v", res.Matched(), tt.match)
			}
			if tt.match && res.Value() != tt.value {
				t.Errorf("Value() = %d, want %d", res.Value(), tt.value)
			}
			if tt.match && res.Next().Pos() != 1 {
				t.Errorf("Next().Pos() = %d, want 1", res.Next().Pos())
			}
		})
	}
}

func TestDigitFailureReason(t *testing.T) {
	res := Run(Digit(), "x")
	if res.Matched() {
		t.Fatal("expected failure")
	}
	if res.Failure().Reason != ExpectedDigit {
		t.Errorf("Reason = %v, want %v", res.Failure().Reason, ExpectedDigit)
	}

	res = Run(Digit(), "")
	if res.Failure().Reason != EndOfInput {
		t.Errorf("Reason on empty input = %v, want %v", res.Failure().Reason, EndOfInput)
	}
}

func TestSatisfy(t *testing.T) {
	vowel := Satisfy("vowel", func(b byte) bool {
		return b == 'a' || b == 'e' || b == 'i' || b == 'o' || b == 'u'
	})

	res := Run(vowel, "east")
	if !res.Matched() || res.Value() != 'e' {
		t.Fatalf("expected match of 'e', got %+v", res)
	}

	res = Run(vowel, "x")
	if res.Matched() {
		t.Fatal("expected failure on consonant")
	}
	f := res.Failure()
	if f.Reason != Expected || f.Want != "vowel" {
		t.Errorf("failure = %v/%q, want Expected/vowel", f.Reason, f.Want)
	}
}

func TestAnyChar(t *testing.T) {
	res := Run(AnyChar(), "?")
	if !res.Matched() || res.Value() != '?' {
		t.Fatalf("expected match of '?', got %+v", res)
	}

	res = Run(AnyChar(), "")
	if res.Matched() {
		t.Fatal("expected failure on empty input")
	}
	if res.Failure().Reason != EndOfInput {
		t.Errorf("Reason = %v, want %v", res.Failure().Reason, EndOfInput)
	}
}

func TestEnd(t *testing.T) {
	res := Run(End(), "")
	if !res.Matched() {
		t.Fatal("expected End to match on empty input")
	}
	if res.Next().Pos() != 0 {
		t.Errorf("End consumed input, Pos() = %d", res.Next().Pos())
	}

	res = Run(End(), "x")
	if res.Matched() {
		t.Fatal("expected End to fail with input remaining")
	}
}

func TestFailureError(t *testing.T) {
	res := Run(Char('a'), "xyz")
	got := res.Failure().Error()
	want := `offset 0: unexpected character, got 'x'`
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	res = Run(Char('a'), "")
	got = res.Failure().Error()
	want = "offset 0: end of input"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
