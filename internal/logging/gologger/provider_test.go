package gologger

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
)

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewProviderReturnsModuleLoggers(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	logger := p.GetLogger("site.test")
	if logger == nil {
		t.Fatal("expected logger")
	}
	logger.Debug("provider.ready")
}

func TestAdapterForwardsCallsAndClonesFields(t *testing.T) {
	stub := &recordingLogger{}
	adapted := wrap(stub)

	adapted.Trace("a")
	adapted.Debug("b")
	adapted.Info("c")
	adapted.Warn("d")
	adapted.Error("e")
	adapted.Fatal("f")

	fields := map[string]any{"module": "site.contact"}
	adapted.(*adapter).WithFields(fields)
	fields["module"] = "mutated"

	if len(stub.fields) != 1 || stub.fields[0]["module"] != "site.contact" {
		t.Fatalf("expected cloned fields, got %#v", stub.fields)
	}

	ctx := context.WithValue(context.Background(), struct{}{}, "v")
	adapted.WithContext(ctx)
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context forwarded, got %#v", stub.contexts)
	}

	want := "abcdef"
	got := ""
	for _, call := range stub.calls {
		got += call
	}
	if got != want {
		t.Fatalf("expected calls %q, got %q", want, got)
	}
}

type recordingLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var (
	_ glog.Logger       = (*recordingLogger)(nil)
	_ glog.FieldsLogger = (*recordingLogger)(nil)
)

func (r *recordingLogger) Trace(msg string, _ ...any) { r.calls = append(r.calls, msg) }
func (r *recordingLogger) Debug(msg string, _ ...any) { r.calls = append(r.calls, msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.calls = append(r.calls, msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.calls = append(r.calls, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.calls = append(r.calls, msg) }
func (r *recordingLogger) Fatal(msg string, _ ...any) { r.calls = append(r.calls, msg) }

func (r *recordingLogger) WithContext(ctx context.Context) glog.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

func (r *recordingLogger) WithFields(fields map[string]any) glog.Logger {
	r.fields = append(r.fields, fields)
	return r
}
