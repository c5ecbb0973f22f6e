package pipeline

import (
	"context"
	"testing"
)

func TestStageFunc_Execute(t *testing.T) {
	double := StageFunc[int, int](func(ctx context.Context, n int) (int, error) {
		return n * 2, nil
	})

	got, err := double.Execute(context.Background(), 21)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}
