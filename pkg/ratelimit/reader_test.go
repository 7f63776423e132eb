package ratelimit

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestParseRate(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"1024", 1024, false},
		{"500K", 500 * 1024, false},
		{"500k", 500 * 1024, false},
		{"10M", 10 * 1024 * 1024, false},
		{"1G", 1024 * 1024 * 1024, false},
		{"abc", 0, true},
		{"-5M", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRate(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseRate(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLimiter_Disabled(t *testing.T) {
	if NewLimiter(0) != nil {
		t.Error("NewLimiter(0) should return nil (no limiting)")
	}
	if NewLimiter(-1) != nil {
		t.Error("NewLimiter(-1) should return nil (no limiting)")
	}
}

func TestNewReader_NoLimiter(t *testing.T) {
	src := strings.NewReader("data")
	r := NewReader(context.Background(), src, nil)
	if r != io.Reader(src) {
		t.Error("NewReader() with nil limiter should return the reader unchanged")
	}
}

func TestReader_PassesDataThrough(t *testing.T) {
	content := bytes.Repeat([]byte("0123456789"), 100)
	limiter := NewLimiter(1024 * 1024) // high enough not to throttle the test

	r := NewReader(context.Background(), bytes.NewReader(content), limiter)

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("read %d bytes, want %d identical bytes", len(got), len(content))
	}
}

func TestReader_Throttles(t *testing.T) {
	// 2KB at 4KB/s starts with a full 64KB burst bucket, so drain the
	// bucket first to observe throttling
	limiter := NewLimiter(4096)
	limiter.consumeTokens(limiter.bucketSize)

	content := make([]byte, 2048)
	r := NewReader(context.Background(), bytes.NewReader(content), limiter)

	start := time.Now()
	if _, err := io.ReadAll(r); err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	elapsed := time.Since(start)

	// 2048 bytes at 4096 B/s should take roughly half a second
	if elapsed < 200*time.Millisecond {
		t.Errorf("read completed in %v, expected throttling", elapsed)
	}
}

func TestReader_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReader(ctx, strings.NewReader("data"), NewLimiter(1024))

	buf := make([]byte, 4)
	if _, err := r.Read(buf); err == nil {
		t.Error("Read() should fail after context cancellation")
	}
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestReadCloser_ClosesUnderlying(t *testing.T) {
	tracker := &closeTracker{Reader: strings.NewReader("data")}

	rc := NewReadCloser(context.Background(), tracker, NewLimiter(1024*1024))
	if err := rc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !tracker.closed {
		t.Error("underlying closer was not closed")
	}
}
