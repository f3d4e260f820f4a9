package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/NobPolish/hackagent/internal/api"
	"github.com/NobPolish/hackagent/internal/output"
)

// client builds the platform client from the loaded config.
func client() *api.Client {
	return api.NewClient(cfg.BaseURL, cfg.APIKey, api.WithTimeout(cfg.Timeout()))
}

// fetchCtx bounds a one-shot command slightly above the per-request timeout
// so the transport deadline fires first and classifies as Timeout.
func fetchCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.Timeout()+time.Second)
}

// outcomeError maps a failed outcome to a user-facing CLIError. Success
// kinds return nil.
func outcomeError[T any](o api.Outcome[T]) error {
	switch o.Kind {
	case api.KindPending, api.KindSuccess, api.KindEmpty:
		return nil
	case api.KindConfigMissing:
		return output.ConfigMissingError()
	case api.KindAuthFailed:
		return output.AuthFailedError()
	case api.KindForbidden:
		return output.NewCLIError("access denied (403)").
			WithCode("FORBIDDEN").
			WithHint(output.HintCheckKey)
	case api.KindNotFound:
		return output.NewCLIError("resource not found (404)").
			WithCode("NOT_FOUND").
			WithCause("the API endpoint may have moved; check base_url")
	case api.KindServerError:
		return output.NewCLIError(fmt.Sprintf("server error (HTTP %d)", o.Status)).
			WithCode("SERVER_ERROR").
			WithHint("Try again shortly")
	case api.KindTimeout:
		return output.NewCLIError("request timed out").
			WithCode("TIMEOUT").
			WithHint(output.HintCheckNetwork)
	case api.KindNetworkError:
		return output.NewCLIError("network error").
			WithCode("NETWORK_ERROR").
			WithCause(o.Message).
			WithHint(output.HintCheckNetwork)
	default:
		return output.NewCLIError("unexpected response").
			WithCode("UNEXPECTED").
			WithCause(o.Message)
	}
}
