package organization

import (
	"fmt"
	"strings"
	"unicode"
)

// trace accumulates one human-readable block per operation. The block is
// written to Output when the operation finishes, whether it failed or not.
type trace struct {
	sb strings.Builder
}

func newTrace(title string) *trace {
	t := &trace{}
	fmt.Fprintf(&t.sb, "=== %s ===\n\n", title)
	return t
}

func (t *trace) line(s string) {
	t.sb.WriteString(s)
	t.sb.WriteByte('\n')
}

func (t *trace) linef(format string, args ...any) {
	t.line(fmt.Sprintf(format, args...))
}

func (t *trace) blank() { t.sb.WriteByte('\n') }

func (t *trace) String() string {
	return strings.TrimRight(t.sb.String(), "\n")
}

// requestTitle turns a message name into a trace title:
// "RetrieveAttribute" becomes "Retrieve Attribute Request".
func requestTitle(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			prev := rune(name[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteRune(r)
	}
	if sb.Len() == 0 {
		sb.WriteString("Unnamed")
	}
	sb.WriteString(" Request")
	return sb.String()
}

func (s *FakeService) emit(text string) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	_, _ = fmt.Fprintln(s.out, text)
}

func (s *FakeService) done(op string, tr *trace, kv ...any) {
	text := tr.String()
	s.emit(text)
	s.logger.Debug("organization."+op, append(kv, "text", text)...)
}

func (s *FakeService) fail(op string, tr *trace, err error) error {
	s.emit(tr.String())
	s.logger.Warn("organization."+op+".failed", "error", err.Error())
	return err
}
