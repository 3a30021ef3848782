package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks the exposition output for a sample of name whose labels match the
// partial pattern. OTel scope labels are added by the exporter, hence the regex.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labels+`[^}]*\} `+value, output)
}

func TestBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("gamestats")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, provider.Shutdown(context.Background())) })

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "gamestats")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "auth", "login", "success")
	bm.RecordOperation(ctx, "auth", "login", "success")
	bm.RecordOperation(ctx, "auth", "login", "error")
	bm.RecordOperation(ctx, "auth", "authenticate", "session_invalid")
	bm.RecordOperation(ctx, "stats", "report_best_players", "success")

	bm.RecordDuration(ctx, "auth", "login", 80*time.Millisecond, "success")
	bm.RecordDuration(ctx, "auth", "login", 120*time.Millisecond, "success")
	bm.RecordDuration(ctx, "stats", "match_generate", 3*time.Millisecond, "skipped")

	output := scrape(t, provider)

	assertMetricLine(t, output, `gamestats_operations_total`,
		`domain="auth".*operation="login".*status="success"`, `2`)
	assertMetricLine(t, output, `gamestats_operations_total`,
		`domain="auth".*operation="login".*status="error"`, `1`)
	assertMetricLine(t, output, `gamestats_operations_total`,
		`domain="auth".*operation="authenticate".*status="session_invalid"`, `1`)
	assertMetricLine(t, output, `gamestats_operations_total`,
		`domain="stats".*operation="report_best_players".*status="success"`, `1`)
	assertMetricLine(t, output, `gamestats_operation_duration_seconds_count`,
		`domain="auth".*operation="login".*status="success"`, `2`)
	assertMetricLine(t, output, `gamestats_operation_duration_seconds_bucket`,
		`domain="stats".*operation="match_generate".*le="0.005"`, `1`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noop := NewNoOpBusinessMetrics()

	assert.IsType(t, NoOpBusinessMetrics{}, noop)
	assert.NotPanics(t, func() {
		noop.RecordOperation(context.Background(), "auth", "login", "success")
		noop.RecordDuration(context.Background(), "stats", "server_list", time.Millisecond, "error")
	})
}
