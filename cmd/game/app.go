package main

import (
	"context"
	"fmt"

	"mythosclient/cmd/game/ui"
	"mythosclient/internal/config"
	"mythosclient/internal/debug"
	"mythosclient/internal/game/session"
	"mythosclient/internal/logging"
	"mythosclient/internal/observability"
	"mythosclient/internal/transport"
)

func createApp() (ui.Model, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.AuthToken == "" {
		return ui.Model{}, nil, fmt.Errorf("please set MYTHOS_AUTH_TOKEN environment variable")
	}

	debugLogger := debug.NewLogger(cfg.Debug)

	ctx := context.Background()
	tracingConfig := observability.LoadConfigFromEnv()
	tracerProvider, err := observability.InitTracing(ctx, tracingConfig)
	if err != nil {
		debugLogger.Printf("Failed to initialize tracing: %v", err)
	} else if tracerProvider.IsEnabled() {
		debugLogger.Println("OpenTelemetry tracing initialized and enabled")
	} else {
		debugLogger.Println("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	var transcript *logging.TranscriptLogger
	if cfg.Transcript {
		transcript, err = logging.NewTranscriptLogger()
		if err != nil {
			return ui.Model{}, nil, fmt.Errorf("failed to initialize transcript logger: %w", err)
		}
	}

	debugLogger.Printf("Connecting to %s...", cfg.ServerURL)
	client, err := transport.Dial(ctx, cfg.ServerURL, cfg.AuthToken, debugLogger)
	if err != nil {
		return ui.Model{}, nil, fmt.Errorf("failed to connect to game server: %w", err)
	}

	sess := session.New(session.Config{
		HistoryLimit: cfg.HistoryLimit,
		HasLogout:    true,
		Log:          debugLogger,
		Transcript:   transcript,
		Tracer:       tracerProvider.GetTracer("mythosclient/session"),
	})
	debugLogger.Printf("Session %s started", sess.ID())

	model := ui.NewModel(sess, client, debugLogger, cfg.APIBaseURL, cfg.AuthToken)

	cleanup := func() {
		model.Cleanup()
		if transcript != nil {
			transcript.Close()
		}
		if tracerProvider != nil {
			tracerProvider.Shutdown(context.Background())
		}
	}

	return model, cleanup, nil
}
