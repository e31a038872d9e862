package services

import (
	"strings"

	"github.com/tidwall/gjson"
)

// RecoverJSON pulls the first well-formed JSON value out of noisy model output.
// The whole text is tried first; otherwise every '{' or '[' starts a bracket
// scan and the first balanced block that parses wins. Brackets inside string
// literals are ignored and closers must match their opener.
func RecoverJSON(text string) (gjson.Result, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return gjson.Result{}, false
	}

	if gjson.Valid(trimmed) {
		return gjson.Parse(trimmed), true
	}

	for start := 0; start < len(text); start++ {
		if text[start] != '{' && text[start] != '[' {
			continue
		}

		end, ok := balancedEnd(text, start)
		if !ok {
			continue
		}

		block := text[start : end+1]
		if gjson.Valid(block) {
			return gjson.Parse(block), true
		}
	}

	return gjson.Result{}, false
}

// balancedEnd returns the index of the bracket closing the one at start.
func balancedEnd(text string, start int) (int, bool) {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				return 0, false
			}
			open := stack[len(stack)-1]
			if (c == '}' && open != '{') || (c == ']' && open != '[') {
				return 0, false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
