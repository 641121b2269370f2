package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

type ctxKey struct{}

type taggedLogger struct {
	buf *bytes.Buffer
	tag string
}

func (l taggedLogger) Logf(c Classification, format string, v ...interface{}) {
	l.buf.WriteString(l.tag + " " + string(c))
}

func (l taggedLogger) WithContext(ctx context.Context) Logger {
	tag, _ := ctx.Value(ctxKey{}).(string)
	return taggedLogger{buf: l.buf, tag: tag}
}

func TestStandardLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStandardLogger(&buf)

	logger.Logf(Debug, "action=%s", "Select")

	if e, a := "DEBUG action=Select", buf.String(); !strings.Contains(a, e) {
		t.Errorf("expected %q in %q", e, a)
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := context.WithValue(context.Background(), ctxKey{}, "op-1")

	WithContext(ctx, taggedLogger{buf: &buf}).Logf(Warn, "x")
	if e, a := "op-1 WARN", buf.String(); e != a {
		t.Errorf("expected %q, got %q", e, a)
	}

	if _, ok := WithContext(ctx, Noop{}).(Noop); !ok {
		t.Errorf("expected non context logger to be returned as is")
	}
}

func TestClientLogMode(t *testing.T) {
	m := LogRequest
	if !m.IsRequest() || m.IsResponse() {
		t.Errorf("unexpected mode bits %b", m)
	}
	m |= LogResponse
	if !m.IsResponse() {
		t.Errorf("expected response bit set")
	}
}
