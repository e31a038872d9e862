package services

import "testing"

func TestRecoverJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
		want string
	}{
		{"pure object", `{"a":1}`, true, `{"a":1}`},
		{"pure array with whitespace", "  [1,2]\n", true, `[1,2]`},
		{"embedded in prose", `Sure! Here: {"quiz":[{"question":"Q1"}]} Hope that helps!`, true, `{"quiz":[{"question":"Q1"}]}`},
		{"nested braces", `x {"a":{"b":[{"c":1}]}} y`, true, `{"a":{"b":[{"c":1}]}}`},
		{"brackets in strings", `note {"q":"what is {x]?","o":["[a","b}"]} end`, true, `{"q":"what is {x]?","o":["[a","b}"]}`},
		{"escaped quote in string", `{"q":"say \"}\" now"} tail`, true, `{"q":"say \"}\" now"}`},
		{"truncated", `Here you go {"quiz":[{"question":"Q1"`, false, ""},
		{"first of multiple blocks", `{"a":1} and {"b":2}`, true, `{"a":1}`},
		{"skips invalid balanced block", `{not json} then {"b":2}`, true, `{"b":2}`},
		{"mismatched kinds", `{"a":[1}`, false, ""},
		{"no json", "nothing to see", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RecoverJSON(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Raw != tt.want {
				t.Fatalf("got %s, want %s", got.Raw, tt.want)
			}
		})
	}
}
