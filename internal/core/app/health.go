package app

import (
	"context"
	"fmt"
	"time"

	"fnoutline/internal/shared/observability"
)

// Health reports whether every configured dialect has a grammar and an
// outliner. It backs the /health endpoint of the metrics server.
func (a *App) Health(ctx context.Context) observability.HealthStatus {
	status := observability.HealthStatus{
		Status:     "up",
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]string),
	}

	if a.Parser == nil {
		status.Status = "degraded"
		status.Components["parser"] = "missing"
		return status
	}

	dialects := a.Parser.Loader().Dialects()
	status.Components["parser"] = fmt.Sprintf("ok (%d dialects)", len(dialects))
	for _, d := range dialects {
		if _, ok := a.outliners[d]; ok {
			status.Components["outliner."+string(d)] = fmt.Sprintf("ok (%d leased)", a.Parser.Leased(d))
			continue
		}
		status.Status = "degraded"
		status.Components["outliner."+string(d)] = "missing"
	}
	return status
}
