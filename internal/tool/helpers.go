package tool

import (
	"context"
	"fmt"
	"log/slog"
)

// base carries the per-invocation client factory shared by every LinkedIn
// tool. Each Execute dials its own client and discards it afterwards.
type base struct {
	Dial Factory
	Log  *slog.Logger
}

func (b base) connect(ctx context.Context) (Client, error) {
	if b.Dial == nil {
		return nil, fmt.Errorf("linkedin client factory not configured")
	}
	return b.Dial(ctx)
}

// errorText logs a delegated-call failure and folds it into the tool's
// text result, the shape the invocation host shows to the user.
func (b base) errorText(msg string, err error) string {
	b.logger().Error(msg, "error", err)
	return fmt.Sprintf("Error: %v", err)
}

func (b base) logger() *slog.Logger {
	if b.Log != nil {
		return b.Log
	}
	return slog.Default()
}

func getString(params map[string]any, key string) string {
	v, _ := params[key].(string)
	return v
}

func getInt(params map[string]any, key string, fallback int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}

func getMap(params map[string]any, key string) map[string]any {
	v, _ := params[key].(map[string]any)
	return v
}

func getStringSlice(params map[string]any, key string) []string {
	raw, ok := params[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}
