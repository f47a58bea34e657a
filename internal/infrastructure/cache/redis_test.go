package cache

import (
	"context"
	"testing"
	"time"

	"career-advisor/internal/config"
	"career-advisor/internal/domain/career"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRedis_DisabledIsNoop(t *testing.T) {
	r := NewRedis(config.RedisConfig{Enabled: false}, nil)

	if err := r.Increment(context.Background(), career.CategoryMobile); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	counts, err := r.Counts(context.Background(), []career.CategoryID{career.CategoryMobile})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if counts[career.CategoryMobile] != 0 {
		t.Fatalf("expected zero hits, got %d", counts[career.CategoryMobile])
	}
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error when disabled")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected close err: %v", err)
	}
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      interface{}
		want    int64
		wantErr bool
	}{
		{name: "missing key", in: nil, want: 0},
		{name: "numeric string", in: "42", want: 42},
		{name: "garbage", in: "abc", wantErr: true},
		{name: "wrong type", in: 3.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseCount(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRedis_UnreachableWarnsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	r := NewRedisWithClient(client, zap.New(core))
	defer func() { _ = r.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Increment(ctx, career.CategoryMobile); err == nil {
		t.Fatalf("expected increment error")
	}
	if err := r.Increment(ctx, career.CategoryEnterprise); err == nil {
		t.Fatalf("expected second increment error")
	}
	if _, err := r.Counts(ctx, []career.CategoryID{career.CategoryMobile}); err == nil {
		t.Fatalf("expected counts error")
	}

	if n := logs.FilterMessage(warnRedisCallFailed).Len(); n != 1 {
		t.Fatalf("expected exactly one warning, got %d", n)
	}
}
