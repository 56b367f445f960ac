// Package tracing provides FakeService, an in-memory core.TracingService
// that keeps every message for later assertions.
package tracing

import (
	"fmt"
	"io"
	"sync"

	"github.com/hupe1980/xrmtesting/core"
	"github.com/hupe1980/xrmtesting/logging"
)

// Header precedes every message written to Output.
const Header = "=== Tracing service message ==="

// Options configures a FakeService.
type Options struct {
	// Logger receives a "tracing.trace" entry per message (defaults to NoOp).
	Logger logging.Logger

	// Output receives the header and message text (defaults to io.Discard).
	Output io.Writer
}

// FakeService records plugin trace output. It is safe for concurrent use.
type FakeService struct {
	logger logging.Logger
	out    io.Writer

	mu       sync.Mutex
	messages []string
}

// NewFakeService creates a tracing sink.
func NewFakeService(optFns ...func(o *Options)) *FakeService {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	return &FakeService{logger: logging.OrNoOp(opts.Logger), out: opts.Output}
}

// Trace formats the message with fmt.Sprintf. Without args the format is
// used verbatim, so a literal "%" needs no escaping.
func (s *FakeService) Trace(format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	_, _ = fmt.Fprintf(s.out, "%s\n%s\n", Header, msg)
	s.mu.Unlock()

	s.logger.Debug("tracing.trace", "message", msg)
}

// Messages returns the traced messages in call order.
func (s *FakeService) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.messages...)
}

// Reset forgets all messages.
func (s *FakeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

var _ core.TracingService = (*FakeService)(nil)
