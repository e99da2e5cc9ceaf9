package content

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"New Chip Unveiled", "new-chip-unveiled"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Apple's M5: 3x faster?!", "apple-s-m5-3x-faster"},
		{"---already-slugged---", "already-slugged"},
		{"Multiple   spaces & symbols!!", "multiple-spaces-symbols"},
		{"", ""},
		{"!!!", ""},
		{"café résumé", "caf-r-sum"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	inputs := []string{
		"New Chip Unveiled",
		"OpenAI's GPT-5 -- What Changed?",
		"“Quoted” — title",
		"-edge-",
		"123 Numbers 456",
	}

	for _, input := range inputs {
		once := Slugify(input)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", input, once, twice)
		}
		if !valid.MatchString(once) {
			t.Errorf("Slugify(%q) = %q contains invalid characters or edge hyphens", input, once)
		}
	}
}
