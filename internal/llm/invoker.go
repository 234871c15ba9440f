package llm

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"hookkit/internal/hooklog"
)

// DefaultTimeout bounds a single provider invocation.
const DefaultTimeout = 30 * time.Second

// Invoker runs provider executables and normalizes their results.
// Every failure — timeout, crash, non-zero exit, empty or error-marked
// output — is logged and reported as absence; Call never returns an
// error to its caller.
type Invoker struct {
	Registry Registry
	Timeout  time.Duration
	Log      *hooklog.Logger
}

func NewInvoker(registry Registry, log *hooklog.Logger) *Invoker {
	return &Invoker{
		Registry: registry,
		Timeout:  DefaultTimeout,
		Log:      log,
	}
}

// Call invokes the provider's executable and returns its trimmed stdout.
// In completion mode the executable is passed the --completion flag and
// no stdin; in prompt mode the prompt text is piped on stdin.
func (inv *Invoker) Call(ctx context.Context, promptText string, provider Provider, mode Mode) (string, bool) {
	if provider == "" || provider == ProviderFallback {
		return "", false
	}
	script, ok := inv.Registry[provider]
	if !ok {
		return "", false
	}
	if _, err := os.Stat(script); err != nil {
		return "", false
	}

	timeout := inv.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var cmd *exec.Cmd
	if mode == ModeCompletion {
		cmd = exec.CommandContext(ctx, script, "--completion")
	} else {
		cmd = exec.CommandContext(ctx, script)
		cmd.Stdin = strings.NewReader(promptText)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			inv.Log.Logf("%s error: timed out after %s", provider.title(), timeout)
			return "", false
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			inv.Log.Logf("%s failed: %s", provider.title(), firstNonBlank(stderr.String(), stdout.String()))
			return "", false
		}
		inv.Log.Logf("%s error: %v", provider.title(), err)
		return "", false
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" || strings.HasPrefix(out, "Error") {
		inv.Log.Logf("%s failed: %s", provider.title(), firstNonBlank(stderr.String(), out))
		return "", false
	}
	return out, true
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
