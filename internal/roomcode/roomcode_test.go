package roomcode

import (
	"strings"
	"testing"

	"github.com/cardroom/euchre/internal/randutil"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	code := Generate()
	if len(code) != Length {
		t.Fatalf("code %q has length %d, want %d", code, len(code), Length)
	}
	if err := Validate(code); err != nil {
		t.Errorf("generated code %q fails validation: %v", code, err)
	}
}

func TestGenerateAvoidsLookalikes(t *testing.T) {
	g := NewGenerator(randutil.New(1))
	for i := 0; i < 200; i++ {
		code := g.Generate()
		if strings.ContainsAny(code, "01OI") {
			t.Fatalf("code %q contains a lookalike character", code)
		}
	}
}

func TestGeneratorDeterministicWithSeed(t *testing.T) {
	g1 := NewGenerator(randutil.New(7))
	g2 := NewGenerator(randutil.New(7))
	for i := 0; i < 10; i++ {
		c1, c2 := g1.Generate(), g2.Generate()
		if c1 != c2 {
			t.Fatalf("seeded generators diverged: %q vs %q", c1, c2)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"ABCDEF", false},
		{"234567", false},
		{"ABC", true},      // too short
		{"ABCDEFG", true},  // too long
		{"ABCDE0", true},   // zero not in alphabet
		{"ABCDEI", true},   // I not in alphabet
		{"abcdef", true},   // lowercase not in alphabet
		{"ABC DE", true},   // space
	}

	for _, tt := range tests {
		err := Validate(tt.code)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abcdef", "ABCDEF"},
		{" ABCDEF ", "ABCDEF"},
		{"AbCdEf", "ABCDEF"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
