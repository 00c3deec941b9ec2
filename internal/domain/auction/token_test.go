package auction

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  []string
	}{
		{
			"lowercases and splits on non-alphanumeric",
			[]string{"Gaming Laptop", "High-end RTX 4080, barely used!"},
			[]string{"gaming", "laptop", "high", "end", "rtx", "4080", "barely", "used"},
		},
		{
			"drops short tokens",
			[]string{"a TV of 55 in"},
			nil,
		},
		{
			"dedupes across texts",
			[]string{"Gaming Console", "console gaming bundle"},
			[]string{"gaming", "console", "bundle"},
		},
		{
			"empty input",
			[]string{"", "  "},
			nil,
		},
		{
			"punctuation only",
			[]string{"--- ... !!!"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(0, tt.texts...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenize_MinLenOverride(t *testing.T) {
	got := Tokenize(5, "Mountain Bike trail ready")
	want := []string{"mountain", "trail", "ready"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(5) = %v, want %v", got, want)
	}
}

func TestSharesToken(t *testing.T) {
	ref := TokenSet(0, "Gaming Laptop", "High-end laptop with RTX graphics")

	if !SharesToken(ref, 0, "Gaming Console", "Latest generation console") {
		t.Error("expected overlap on 'gaming'")
	}
	if SharesToken(ref, 0, "Office Desk", "Standing desk, adjustable") {
		t.Error("expected no overlap")
	}
	if SharesToken(nil, 0, "Gaming Console", "whatever") {
		t.Error("empty reference set must never match")
	}
}

func TestSharesToken_CaseInsensitive(t *testing.T) {
	ref := TokenSet(0, "GAMING LAPTOP", "")
	if !SharesToken(ref, 0, "gaming console", "") {
		t.Error("token comparison must be case-insensitive")
	}
}
