package llm

import (
	"context"
	"math/rand/v2"

	"hookkit/internal/config"
	"hookkit/internal/hooklog"
)

// Orchestrator ties provider resolution, invocation, and the fallback
// chain together. It never fails outward: CompletionMessage always
// produces a usable string.
type Orchestrator struct {
	Config  config.Config
	Invoker *Invoker
}

func NewOrchestrator(cfg config.Config) *Orchestrator {
	return &Orchestrator{
		Config:  cfg,
		Invoker: NewInvoker(DefaultRegistry(cfg.ScriptDir), hooklog.New("")),
	}
}

// CallWithFallback tries the resolved provider first, then the fixed
// chain skipping the one already tried, and reports which provider
// answered.
func (o *Orchestrator) CallWithFallback(ctx context.Context, promptText string, mode Mode) (string, Provider, bool) {
	primary := Resolve(o.Config)
	if primary != ProviderFallback {
		if out, ok := o.Invoker.Call(ctx, promptText, primary, mode); ok {
			return out, primary, true
		}
	}

	for _, provider := range fallbackOrder {
		if provider == primary {
			continue
		}
		if out, ok := o.Invoker.Call(ctx, promptText, provider, mode); ok {
			return out, provider, true
		}
	}
	return "", ProviderFallback, false
}

// CompletionMessage asks the providers for a short completion message
// and falls back to a random canned one when every attempt fails.
func (o *Orchestrator) CompletionMessage(ctx context.Context) string {
	if msg, _, ok := o.CallWithFallback(ctx, "", ModeCompletion); ok {
		return msg
	}
	return fallbackMessages[rand.IntN(len(fallbackMessages))]
}
