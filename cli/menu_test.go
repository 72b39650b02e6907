package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestMenu_Run(t *testing.T) {
	t.Parallel()

	t.Run("dispatches chosen option then exits", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test Menu", strings.NewReader("1\n0\n"), &out)

		called := 0
		menu.Add("First", func() error {
			called++
			return nil
		})

		if err := menu.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if called != 1 {
			t.Errorf("handler called %d times, want 1", called)
		}
		if !strings.Contains(out.String(), "1. First") {
			t.Errorf("output missing option line:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "0. Exit") {
			t.Errorf("output missing exit line:\n%s", out.String())
		}
	})

	t.Run("invalid input re-prompts", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test", strings.NewReader("abc\n9\n0\n"), &out)
		menu.Add("Only", func() error { return nil })

		if err := menu.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if got := strings.Count(out.String(), "Please enter a number between 0 and 1."); got != 2 {
			t.Errorf("re-prompt count = %d, want 2:\n%s", got, out.String())
		}
	})

	t.Run("handler errors are printed and the menu continues", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test", strings.NewReader("1\n1\n0\n"), &out)

		calls := 0
		menu.Add("Flaky", func() error {
			calls++
			if calls == 1 {
				return errors.New("region not found")
			}
			return nil
		})

		if err := menu.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if calls != 2 {
			t.Errorf("handler called %d times, want 2", calls)
		}
		if !strings.Contains(out.String(), "Error: region not found") {
			t.Errorf("output missing error line:\n%s", out.String())
		}
	})

	t.Run("end of input stops the menu", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test", strings.NewReader(""), &out)
		menu.Add("Never", func() error {
			t.Error("handler should not run")
			return nil
		})

		if err := menu.Run(); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	})
}

func TestMenu_Prompt(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed line", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test", strings.NewReader("  Newhaven  \n"), &out)

		got, ok := menu.Prompt("Region?")
		if !ok {
			t.Fatal("Prompt() ok = false, want true")
		}
		if got != "Newhaven" {
			t.Errorf("Prompt() = %q, want %q", got, "Newhaven")
		}
		if !strings.Contains(out.String(), "Region?") {
			t.Errorf("output missing question:\n%s", out.String())
		}
	})

	t.Run("end of input", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test", strings.NewReader(""), &out)

		if _, ok := menu.Prompt("Region?"); ok {
			t.Error("Prompt() ok = true, want false")
		}
	})
}

func TestMenu_PromptInt(t *testing.T) {
	t.Parallel()

	t.Run("retries until a number", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test", strings.NewReader("two\n2\n"), &out)

		got, ok := menu.PromptInt("Rooms?")
		if !ok {
			t.Fatal("PromptInt() ok = false, want true")
		}
		if got != 2 {
			t.Errorf("PromptInt() = %d, want 2", got)
		}
		if !strings.Contains(out.String(), "Please enter a whole number.") {
			t.Errorf("output missing retry message:\n%s", out.String())
		}
	})

	t.Run("end of input", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		menu := NewMenu("Test", strings.NewReader("nope\n"), &out)

		if _, ok := menu.PromptInt("Rooms?"); ok {
			t.Error("PromptInt() ok = true, want false")
		}
	})
}
