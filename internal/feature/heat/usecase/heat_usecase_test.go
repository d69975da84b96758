package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

// fixedNoon pins the clock to 2026-09-01 12:00 UTC, which is the evening
// of 2026-09-01 in Asia/Shanghai; the expected day key follows.
var fixedNoon = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

const fixedKey = "heat:2026-09-01"

func TestHeatUsecase_Count_Redis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(mock redismock.ClientMock)
		expected int64
		wantErr  bool
	}{
		{
			name: "missing key counts as zero",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(fixedKey).RedisNil()
			},
			expected: 0,
		},
		{
			name: "existing key returned",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(fixedKey).SetVal("42")
			},
			expected: 42,
		},
		{
			name: "redis error propagates",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectGet(fixedKey).SetErr(context.DeadlineExceeded)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rdb, mock := redismock.NewClientMock()
			tt.setup(mock)

			hu := NewHeatUsecase(rdb, "")
			hu.now = func() time.Time { return fixedNoon }

			n, err := hu.Count(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tt.expected {
				t.Errorf("expected count %d, got %d", tt.expected, n)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestHeatUsecase_Increment_Redis(t *testing.T) {
	t.Parallel()

	t.Run("first visit of the day sets expiry", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		mock.ExpectIncr(fixedKey).SetVal(1)
		mock.ExpectExpire(fixedKey, 48*time.Hour).SetVal(true)

		hu := NewHeatUsecase(rdb, "")
		hu.now = func() time.Time { return fixedNoon }

		n, err := hu.Increment(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Errorf("expected count 1, got %d", n)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("later visits skip the expiry call", func(t *testing.T) {
		t.Parallel()

		rdb, mock := redismock.NewClientMock()
		mock.ExpectIncr(fixedKey).SetVal(7)

		hu := NewHeatUsecase(rdb, "")
		hu.now = func() time.Time { return fixedNoon }

		n, err := hu.Increment(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 7 {
			t.Errorf("expected count 7, got %d", n)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

// TestHeatUsecase_MemoryFallback verifies the degraded mode used when
// Redis is not configured: counting still works and resets at the local
// day boundary.
func TestHeatUsecase_MemoryFallback(t *testing.T) {
	t.Parallel()

	hu := NewHeatUsecase(nil, "")
	now := fixedNoon
	hu.now = func() time.Time { return now }

	if n, _ := hu.Count(context.Background()); n != 0 {
		t.Errorf("expected 0 before any visit, got %d", n)
	}

	if n, _ := hu.Increment(context.Background()); n != 1 {
		t.Errorf("expected 1 after first visit, got %d", n)
	}
	if n, _ := hu.Increment(context.Background()); n != 2 {
		t.Errorf("expected 2 after second visit, got %d", n)
	}
	if n, _ := hu.Count(context.Background()); n != 2 {
		t.Errorf("expected count 2, got %d", n)
	}

	// Next local day resets the counter
	now = now.Add(24 * time.Hour)
	if n, _ := hu.Count(context.Background()); n != 0 {
		t.Errorf("expected reset count 0, got %d", n)
	}
	if n, _ := hu.Increment(context.Background()); n != 1 {
		t.Errorf("expected 1 on new day, got %d", n)
	}
}
