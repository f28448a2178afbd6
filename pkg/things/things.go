package things

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Client talks to the Things 3 app through macOS inter-app scripting
// (osascript). There is no read-back: Things assigns no id we can observe,
// so all operations are one-way.
type Client struct {
	listName string
	timeout  time.Duration
	runner   ScriptRunner
}

// ScriptRunner executes an AppleScript source and returns its combined output.
type ScriptRunner func(ctx context.Context, script string) error

// NewClient creates a Things client targeting the given list (usually "Today").
func NewClient(listName string, timeout time.Duration) *Client {
	if listName == "" {
		listName = "Today"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		listName: listName,
		timeout:  timeout,
		runner:   runOsascript,
	}
}

// SetRunner overrides the script runner for testing purposes.
func (c *Client) SetRunner(r ScriptRunner) {
	c.runner = r
}

// AddTask creates a to-do in the configured list, annotated with the
// scheduled time.
func (c *Client) AddTask(ctx context.Context, title string, due time.Time) error {
	notes := fmt.Sprintf("Scheduled: %s", formatDue(due))
	script := fmt.Sprintf(`
tell application "Things3"
	set newToDo to make new to do with properties {name:%s, notes:%s}
	move newToDo to list %s
end tell
`, quote(title), quote(notes), quote(c.listName))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.runner(ctx, script); err != nil {
		return fmt.Errorf("failed to add task to Things: %w", err)
	}
	return nil
}

// runOsascript pipes the script to /usr/bin/osascript.
func runOsascript(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("osascript: %s: %w", msg, err)
		}
		return fmt.Errorf("osascript: %w", err)
	}
	return nil
}

// quote wraps s in AppleScript double quotes, escaping embedded quotes and
// backslashes.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// formatDue renders the due time the way the notes field displays it,
// e.g. "2:00 PM on Friday, January 5".
func formatDue(due time.Time) string {
	return strings.TrimPrefix(due.Format("3:04 PM on Monday, January 2"), "0")
}
