package ids

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestNewRunID(t *testing.T) {
	now := time.Now()

	a, err := NewRunID(now)
	if err != nil {
		t.Fatalf("NewRunID() error = %v", err)
	}
	b, err := NewRunID(now)
	if err != nil {
		t.Fatalf("NewRunID() error = %v", err)
	}

	if a == b {
		t.Errorf("expected distinct ids, got %s twice", a)
	}
	if got := ulid.Time(a.Time()); got.UnixMilli() != now.UnixMilli() {
		t.Errorf("id time = %v, want %v", got, now)
	}
	if _, err := ulid.Parse(a.String()); err != nil {
		t.Errorf("ulid.Parse(%s) error = %v", a, err)
	}
}

func TestNewRunID_MonotonicWithinMillisecond(t *testing.T) {
	now := time.Now()

	prev, err := NewRunID(now)
	if err != nil {
		t.Fatalf("NewRunID() error = %v", err)
	}
	for i := 0; i < 100; i++ {
		id, err := NewRunID(now)
		if err != nil {
			t.Fatalf("NewRunID() error = %v", err)
		}
		if id.Compare(prev) <= 0 {
			t.Fatalf("id %s is not greater than previous %s", id, prev)
		}
		prev = id
	}
}
