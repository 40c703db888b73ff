package mocks

import (
	"context"
	"stayadmin/infras/otel"
	"sync"
)

// Recorder is an otel.Otel whose scopes keep the errors they trace.
type Recorder struct {
	mu     sync.Mutex
	traced []error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &recordingScope{recorder: r}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Traced returns every error traced so far, in order.
func (r *Recorder) Traced() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.traced...)
}

func (r *Recorder) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.traced = append(r.traced, err)
}

type recordingScope struct {
	scopeImpl
	recorder *Recorder
}

// TraceError implements otel.Scope.
func (s *recordingScope) TraceError(err error) {
	s.recorder.record(err)
}

// TraceIfError implements otel.Scope.
func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.recorder.record(err)
	}
}
