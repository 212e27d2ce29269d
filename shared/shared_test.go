package shared_test

import (
	"reflect"
	"testing"

	"glade/shared"
	"glade/shared/constant"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if got != nil {
					t.Errorf("expected nil, got %v", *got)
				}

				return
			}

			if got == nil || *got != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, got)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{
			name:     "valid integer",
			input:    "42",
			expected: 42,
		},
		{
			name:     "negative integer",
			input:    "-7",
			expected: -7,
		},
		{
			name:    "invalid input",
			input:   "abc",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ConvertStringToInt(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns one page",
			total:    25,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "remainder rounds up",
			total:    21,
			limit:    10,
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "already two decimals",
			input:    10.25,
			expected: 10.25,
		},
		{
			name:     "rounds down",
			input:    10.254,
			expected: 10.25,
		},
		{
			name:     "rounds up",
			input:    10.256,
			expected: 10.26,
		},
		{
			name:     "negative value",
			input:    -3.456,
			expected: -3.46,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.Round2(tt.input); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple name",
			input:    "Lakeside Cabin",
			expected: "lakeside-cabin",
		},
		{
			name:     "punctuation collapses to single hyphen",
			input:    "Bob's  --  Retreat!",
			expected: "bob-s-retreat",
		},
		{
			name:     "leading and trailing separators are trimmed",
			input:    "  Pine Lodge  ",
			expected: "pine-lodge",
		},
		{
			name:     "digits survive",
			input:    "Cottage No. 7",
			expected: "cottage-no-7",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.Slugify(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("cottage", "get", "abc"); got != "cottage:get:abc" {
		t.Errorf("expected cottage:get:abc, got %q", got)
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name  string   `db:"name"`
		Price *float64 `db:"price"`
		Notes string   `json:"notes"`
	}

	price := 12.5
	fields := shared.TransformFields(updateRequest{Name: "Sauna", Price: &price, Notes: "ignored"}, "tester")

	if fields["name"] != "Sauna" {
		t.Errorf("expected name to be set, got %v", fields["name"])
	}

	if !reflect.DeepEqual(fields["price"], &price) {
		t.Errorf("expected price pointer to be set, got %v", fields["price"])
	}

	if _, ok := fields["notes"]; ok {
		t.Error("fields without a db tag must not be included")
	}

	if fields[constant.FieldModifiedBy] != "tester" {
		t.Errorf("expected modified_by to be tester, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestTransformFieldsSkipsZeroValues(t *testing.T) {
	type updateRequest struct {
		Name     string `db:"name"`
		Capacity *int   `db:"capacity"`
	}

	fields := shared.TransformFields(updateRequest{}, "tester")

	if _, ok := fields["name"]; ok {
		t.Error("zero name must not be included")
	}

	if _, ok := fields["capacity"]; ok {
		t.Error("nil capacity must not be included")
	}
}
