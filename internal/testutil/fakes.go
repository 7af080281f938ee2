package testutil

import (
	"fmt"
	"io/fs"
)

// StubCodec is a Codec test double. It fails Marshal or Unmarshal with the
// configured errors and otherwise produces a fixed blob, so persistence
// paths can proceed when only one direction should fail.
type StubCodec struct {
	MarshalErr   error
	UnmarshalErr error
}

// Marshal returns MarshalErr when set, else a fixed blob.
func (c StubCodec) Marshal(any) ([]byte, error) {
	if c.MarshalErr != nil {
		return nil, c.MarshalErr
	}
	return []byte("blob"), nil
}

// Unmarshal returns UnmarshalErr (nil means success without touching v).
func (c StubCodec) Unmarshal([]byte, any) error {
	return c.UnmarshalErr
}

// Name identifies the stub in log records.
func (StubCodec) Name() string { return "stub" }

// StubBackend is a Backend test double. It records every saved blob and
// fails Save or Load with the configured errors. With no saves and no
// LoadErr, Load reports fs.ErrNotExist like an empty real backend.
type StubBackend struct {
	SaveErr error
	LoadErr error
	Saved   [][]byte
	Closed  int
}

// Load returns LoadErr when set, the last saved blob otherwise.
func (b *StubBackend) Load() ([]byte, error) {
	if b.LoadErr != nil {
		return nil, b.LoadErr
	}
	if len(b.Saved) == 0 {
		return nil, fmt.Errorf("no snapshot: %w", fs.ErrNotExist)
	}
	return b.Saved[len(b.Saved)-1], nil
}

// Save returns SaveErr when set, else appends a copy of data to Saved.
func (b *StubBackend) Save(data []byte) error {
	if b.SaveErr != nil {
		return b.SaveErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	b.Saved = append(b.Saved, cp)
	return nil
}

// Close counts invocations and never fails.
func (b *StubBackend) Close() error {
	b.Closed++
	return nil
}

// Record is one captured log call.
type Record struct {
	Level string
	Msg   string
	Args  []any
}

// RecordingLogger captures log calls for assertions about what a store
// reported and at which level.
type RecordingLogger struct {
	Records []Record
}

// Debug captures a debug record.
func (l *RecordingLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }

// Info captures an info record.
func (l *RecordingLogger) Info(msg string, args ...any) { l.record("INFO", msg, args) }

// Warn captures a warn record.
func (l *RecordingLogger) Warn(msg string, args ...any) { l.record("WARN", msg, args) }

// Error captures an error record.
func (l *RecordingLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

func (l *RecordingLogger) record(level, msg string, args []any) {
	l.Records = append(l.Records, Record{Level: level, Msg: msg, Args: args})
}

// Messages returns the captured messages at the given level in order.
func (l *RecordingLogger) Messages(level string) []string {
	var msgs []string
	for _, r := range l.Records {
		if r.Level == level {
			msgs = append(msgs, r.Msg)
		}
	}
	return msgs
}
