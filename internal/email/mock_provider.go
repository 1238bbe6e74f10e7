package email

import (
	"context"
	"sync"

	"pharmacare_backend/internal/logger"
)

// MockProvider records messages instead of sending them. Used in tests and
// in local runs where no SMTP host is configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []Message
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(_ context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Sent = append(p.Sent, msg)
	logger.Debug("mock email captured", "to", msg.To, "subject", msg.Subject)
	return nil
}

// LastTo returns the recipient of the most recent message, or "".
func (p *MockProvider) LastTo() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.Sent) == 0 {
		return ""
	}
	return p.Sent[len(p.Sent)-1].To
}
