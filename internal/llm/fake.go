package llm

import (
	"context"
	"sync"
)

// Fake is a scripted Client for tests in other packages.
type Fake struct {
	mu       sync.Mutex
	Response string
	Err      error
	Requests []Request
}

func (f *Fake) Name() string { return "fake" }

func (f *Fake) Complete(ctx context.Context, req Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requests = append(f.Requests, req)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}
