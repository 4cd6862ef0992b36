package llm

import (
	"context"
)

type MockClient struct {
	Response string
	Err      error

	Calls      int
	LastSystem string
	LastUser   string
	LastTokens int
}

func (m *MockClient) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	m.Calls++
	m.LastSystem = system
	m.LastUser = user
	m.LastTokens = maxTokens
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
