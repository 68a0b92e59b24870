package main

import (
	"context"
	"log/slog"
	"planzajec-backend/lib/restyutil"
	"planzajec-backend/lib/serviceutil"
	"planzajec-backend/lib/telemetry"
)

// InitTelemetry sets up logging and exporters, the returned output is nil
// unless verbose dumps of upstream documents were requested.
func InitTelemetry(ctx context.Context, verbose bool) restyutil.InstrumentOutput {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	t, err := telemetry.SetupFromEnv(ctx, "planzajec-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		err := t.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shut down telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return nil
	}
	out, err := restyutil.NewFilesystemOutput(".dev/resty/uek")
	if err != nil {
		slog.WarnContext(ctx, "upstream dumps disabled", "err", err)
		return nil
	}
	return out
}
