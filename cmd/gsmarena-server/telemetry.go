package main

import (
	"context"
	"log/slog"

	"gsmarena-backend/lib/restyutil"
	"gsmarena-backend/lib/serviceutil"
	"gsmarena-backend/lib/telemetry"
)

// InitTelemetry installs the logger and otel providers, it returns the
// output resty exchanges are dumped to (nil unless verbose).
func InitTelemetry(ctx context.Context, verbose bool) restyutil.InstrumentOutput {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "gsmarena-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shut down telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return nil
	}

	output, err := restyutil.NewFilesystemOutput("<dev_state>/resty/gsmarena")
	if err != nil {
		slog.Warn("resty dumps disabled", "err", err)
		return nil
	}
	return output
}
