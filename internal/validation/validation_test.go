package validation

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/agbru/fibspiral/internal/errors"
)

func TestParse_Accepts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  uint64
	}{
		{"zero", "0", 0},
		{"one", "1", 1},
		{"typical", "12", 12},
		{"upper bound", "40", 40},
		{"leading whitespace", "  7", 7},
		{"trailing whitespace", "7  ", 7},
		{"both sides whitespace", "\t 25 \n", 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		wantKind  apperrors.ValidationKind
		wantInput string
	}{
		{"empty", "", apperrors.NotANumber, ""},
		{"whitespace only", "   ", apperrors.NotANumber, ""},
		{"letters", "abc", apperrors.NotANumber, "abc"},
		{"mixed", "12a", apperrors.NotANumber, "12a"},
		{"symbol", "+", apperrors.NotANumber, "+"},
		{"decimal point", "3.5", apperrors.NotANumber, "3.5"},
		{"embedded space", "1 2", apperrors.NotANumber, "1 2"},
		// A minus sign fails the unsigned parse, so negatives classify as
		// NotANumber rather than OutOfRange.
		{"negative one", "-1", apperrors.NotANumber, "-1"},
		{"negative five", "-5", apperrors.NotANumber, "-5"},
		{"just above bound", "41", apperrors.OutOfRange, "41"},
		{"far above bound", "1000", apperrors.OutOfRange, "1000"},
		{"beyond uint64", "99999999999999999999999", apperrors.NotANumber, "99999999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}

			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Parse(%q) error is %T, want ValidationError", tt.input, err)
			}
			if ve.Kind != tt.wantKind {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.input, ve.Kind, tt.wantKind)
			}
			if ve.Input != tt.wantInput {
				t.Errorf("Parse(%q) offending input = %q, want %q", tt.input, ve.Input, tt.wantInput)
			}
			if ve.Field != FieldN {
				t.Errorf("Parse(%q) field = %q, want %q", tt.input, ve.Field, FieldN)
			}
		})
	}
}

func TestParse_NeverPanicsAndIsDeterministic(t *testing.T) {
	t.Parallel()
	inputs := []string{"", " ", "abc", "-5", "0", "40", "41", "9999", "\x00", "４０"}

	for _, input := range inputs {
		first, firstErr := Parse(input)
		second, secondErr := Parse(input)
		if first != second || (firstErr == nil) != (secondErr == nil) {
			t.Errorf("Parse(%q) not deterministic: (%d, %v) then (%d, %v)",
				input, first, firstErr, second, secondErr)
		}
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{
			"not a number",
			apperrors.NewNotANumber(FieldN, "abc"),
			"please enter a valid number",
		},
		{
			"out of range",
			apperrors.NewOutOfRange(FieldN, "41", MaxN),
			"number 41 is too large: enter a value between 0 and 40",
		},
		{
			"wrapped validation error",
			fmt.Errorf("submit: %w", apperrors.NewNotANumber(FieldN, "x")),
			"please enter a valid number",
		},
		{
			"non-validation error",
			errors.New("disk on fire"),
			"disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Describe(tt.err); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ExampleParse demonstrates the bounds of accepted input.
func ExampleParse() {
	n, _ := Parse(" 10 ")
	fmt.Println(n)

	_, err := Parse("41")
	fmt.Println(Describe(err))

	_, err = Parse("three")
	fmt.Println(Describe(err))

	// Output:
	// 10
	// number 41 is too large: enter a value between 0 and 40
	// please enter a valid number
}
