package services

import (
	"context"
	"sync"
)

type fakeChat struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (f *fakeChat) Name() string { return "fake" }

func (f *fakeChat) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeChat) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type fakeParser struct {
	text string
}

func (f fakeParser) ExtractText(string) string { return f.text }
