package observability

import (
	"context"
	"reflect"
	"testing"

	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

func TestParseHeaders(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		want map[string]string
	}{
		{"", nil},
		{"   ", nil},
		{"api-key=abc", map[string]string{"api-key": "abc"}},
		{" a = 1 , b=2,broken,=x,c=", map[string]string{"a": "1", "b": "2"}},
	}
	for _, tc := range cases {
		if got := ParseHeaders(tc.raw); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseHeaders(%q): want=%v got=%v", tc.raw, tc.want, got)
		}
	}
}

func TestClampRatio(t *testing.T) {
	t.Parallel()
	for in, want := range map[float64]float64{-1: 0.1, 0: 0.1, 0.5: 0.5, 3: 1} {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v): want=%v got=%v", in, want, got)
		}
	}
}

func TestInitOTelDisabled(t *testing.T) {
	t.Parallel()
	shutdown := InitOTel(context.Background(), logger.Nop(), OtelConfig{Enabled: false})
	if shutdown == nil {
		t.Fatalf("shutdown: want non-nil")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	_, span := Tracer().Start(context.Background(), "noop")
	span.End()
}
