package mediator

import (
	"strings"
	"testing"
	"time"

	"github.com/Design-Arena-Gens/agentic-bd57676b/config"
)

func TestNewApp(t *testing.T) {
	t.Run("placeholder_default", func(t *testing.T) {
		app, err := NewApp(config.Config{})
		if err != nil {
			t.Fatalf("new app: %v", err)
		}
		defer app.Shutdown()

		if app.rpc != nil {
			t.Fatal("rpc client created for the placeholder backend")
		}
		if app.Config.Generation.Backend != config.BackendPlaceholder {
			t.Fatalf("backend: got %q", app.Config.Generation.Backend)
		}
		if got := app.Config.Generation.SimulatedLatency(); got != 3*time.Second {
			t.Fatalf("latency: got %s want 3s", got)
		}
	})

	t.Run("rpc", func(t *testing.T) {
		app, err := NewApp(config.Config{
			Generation: config.GenerationConfig{Backend: config.BackendRpc},
			Rpc:        config.RpcConfig{Peer: "localhost", Port: "50051"},
		})
		if err != nil {
			t.Fatalf("new app: %v", err)
		}
		defer app.Shutdown()

		if app.rpc == nil {
			t.Fatal("rpc client not created")
		}
	})

	t.Run("unknown_backend", func(t *testing.T) {
		_, err := NewApp(config.Config{Generation: config.GenerationConfig{Backend: "veo"}})
		if err == nil || !strings.Contains(err.Error(), `"veo"`) {
			t.Fatalf("got %v want unknown backend error", err)
		}
	})
}
