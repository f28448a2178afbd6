package things_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"weekly-agenda/pkg/things"
)

func TestAddTask(t *testing.T) {
	due := time.Date(2024, 1, 5, 14, 0, 0, 0, time.UTC)

	t.Run("Builds script for configured list", func(t *testing.T) {
		var captured string
		client := things.NewClient("Today", time.Second)
		client.SetRunner(func(ctx context.Context, script string) error {
			captured = script
			return nil
		})

		if err := client.AddTask(context.Background(), "Review budget", due); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{
			`tell application "Things3"`,
			`name:"Review budget"`,
			`move newToDo to list "Today"`,
			`Scheduled: 2:00 PM on Friday, January 5`,
		} {
			if !strings.Contains(captured, want) {
				t.Errorf("script missing %q:\n%s", want, captured)
			}
		}
	})

	t.Run("Escapes quotes in title", func(t *testing.T) {
		var captured string
		client := things.NewClient("", 0)
		client.SetRunner(func(ctx context.Context, script string) error {
			captured = script
			return nil
		})

		if err := client.AddTask(context.Background(), `Call "the" plumber`, due); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(captured, `name:"Call \"the\" plumber"`) {
			t.Errorf("quotes not escaped:\n%s", captured)
		}
	})

	t.Run("Runner failure is wrapped", func(t *testing.T) {
		client := things.NewClient("Today", time.Second)
		client.SetRunner(func(ctx context.Context, script string) error {
			return errors.New("Things3 got an error")
		})

		err := client.AddTask(context.Background(), "Anything", due)
		if err == nil || !strings.Contains(err.Error(), "failed to add task to Things") {
			t.Errorf("expected wrapped error, got %v", err)
		}
	})

	t.Run("Timeout reaches runner context", func(t *testing.T) {
		client := things.NewClient("Today", time.Nanosecond)
		client.SetRunner(func(ctx context.Context, script string) error {
			<-ctx.Done()
			return ctx.Err()
		})

		if err := client.AddTask(context.Background(), "Slow", due); err == nil {
			t.Errorf("expected timeout error")
		}
	})
}
