package ai

import (
	"reflect"
	"testing"
)

// =============================================================================
// Normalize Tests
// =============================================================================

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantItems  []any
		wantReason Reason
	}{
		{
			name:      "fenced array of objects",
			raw:       "```json\n[{\"a\":1}]\n```",
			wantItems: []any{map[string]any{"a": float64(1)}},
		},
		{
			name:      "fenced array of strings",
			raw:       "```json\n[\"Data Engineer\"]\n```",
			wantItems: []any{"Data Engineer"},
		},
		{
			name:      "fence tag in upper case",
			raw:       "```JSON\n[\"a\"]\n```",
			wantItems: []any{"a"},
		},
		{
			name:      "bare array",
			raw:       `  ["Data Engineer", "SRE"]  `,
			wantItems: []any{"Data Engineer", "SRE"},
		},
		{
			name:      "array embedded in prose",
			raw:       "Sure! Here are some ideas:\n[{\"title\":\"A\"},{\"title\":\"B\"}]\nHope this helps.",
			wantItems: []any{map[string]any{"title": "A"}, map[string]any{"title": "B"}},
		},
		{
			name:      "object flattened to string values",
			raw:       `{"x":"hello","y":2}`,
			wantItems: []any{"hello"},
		},
		{
			name:      "object values keep document order",
			raw:       `{"z":"first","a":"second","m":"third"}`,
			wantItems: []any{"first", "second", "third"},
		},
		{
			name:      "duplicate keys keep the last value",
			raw:       `{"a":"x","b":"y","a":"z"}`,
			wantItems: []any{"z", "y"},
		},
		{
			name:      "duplicate key overwritten by a non-string",
			raw:       `{"a":"x","a":3,"b":"y"}`,
			wantItems: []any{"y"},
		},
		{
			name:      "empty array is still a success",
			raw:       `[]`,
			wantItems: []any{},
		},
		{
			name:       "prose without structure",
			raw:        "I am sorry, I cannot help with that.",
			wantItems:  []any{},
			wantReason: ReasonInvalidJSON,
		},
		{
			name:       "broken embedded array",
			raw:        `Here: [{"title": "A",}] done`,
			wantItems:  []any{},
			wantReason: ReasonInvalidJSON,
		},
		{
			name:       "scalar is an unexpected shape",
			raw:        `42`,
			wantItems:  []any{},
			wantReason: ReasonUnexpectedShape,
		},
		{
			name:       "empty reply",
			raw:        "",
			wantItems:  []any{},
			wantReason: ReasonInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)

			if got.Reason != tt.wantReason {
				t.Fatalf("Normalize() reason = %v, want %v (err: %v)", got.Reason, tt.wantReason, got.Err)
			}
			if got.OK() != (tt.wantReason == ReasonNone) {
				t.Errorf("Normalize() OK() = %v", got.OK())
			}
			if got.Items == nil {
				t.Fatal("Normalize() returned nil Items, want non-nil slice")
			}
			if !reflect.DeepEqual(got.Items, tt.wantItems) {
				t.Errorf("Normalize() items = %#v, want %#v", got.Items, tt.wantItems)
			}
			if !got.OK() && got.Err == nil {
				t.Error("Normalize() failure should carry the parse error")
			}
		})
	}
}

func TestReason_String(t *testing.T) {
	tests := []struct {
		reason Reason
		want   string
	}{
		{ReasonNone, "none"},
		{ReasonUpstream, "upstream_failure"},
		{ReasonInvalidJSON, "invalid_json"},
		{ReasonUnexpectedShape, "unexpected_shape"},
		{Reason(99), "reason(99)"},
	}

	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("Reason(%d).String() = %q, want %q", int(tt.reason), got, tt.want)
		}
	}
}
