package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"friendlylink/internal/logic"
	"friendlylink/internal/platform/config"
	"friendlylink/internal/platform/kafka/producer"
	"friendlylink/internal/platform/metrics"
	"friendlylink/internal/platform/tracer"
	"friendlylink/internal/registry/events"
	registrymetrics "friendlylink/internal/registry/metrics"
	"friendlylink/internal/registry/service"
	"friendlylink/internal/registry/storage"
	"friendlylink/internal/seeder"
	"friendlylink/pkg/platform/circuit"
)

const prompt = "> "

// run wires the registry and serves commands from in until exit, EOF or
// cancellation. Pending changes are saved before returning.
func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer, log *slog.Logger) error {
	reg := metrics.NewRegistry()
	registryMetrics := registrymetrics.New(reg)

	backend, closer, err := storage.Open(ctx, cfg, log, reg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("failed to close storage", "error", err)
		}
	}()

	publisher, closePublisher, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return fmt.Errorf("create change publisher: %w", err)
	}
	defer closePublisher()

	model := service.New(ctx, backend,
		service.WithLogger(log),
		service.WithMetrics(registryMetrics),
		service.WithChangePublisher(publisher),
	)

	if cfg.SeedSample && model.LoadOutcome() == service.LoadedNoData {
		if err := seeder.New(log).SeedAll(ctx, model); err != nil {
			log.Warn("failed to seed sample data", "error", err)
		}
	}

	manager := logic.New(model,
		logic.WithLogger(log),
		logic.WithMetrics(registryMetrics),
		logic.WithTracer(tracer.NewOTel()),
	)

	serveErr := serve(ctx, manager, in, out)

	// Context may already be cancelled by a signal; the final save still runs.
	saveCtx := context.WithoutCancel(ctx)
	if err := model.Save(saveCtx); err != nil {
		log.Error("failed to save registry on exit", "error", err)
		if serveErr == nil {
			serveErr = err
		}
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			log.Warn("failed to write metrics textfile", "path", cfg.MetricsFile, "error", err)
		}
	}

	return serveErr
}

// serve reads one command per line. Errors from a single command are shown
// to the user and do not stop the loop.
func serve(ctx context.Context, manager *logic.Manager, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	fmt.Fprint(out, prompt)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) == "" {
				fmt.Fprint(out, prompt)
				continue
			}
			result, err := manager.Execute(ctx, line)
			if result.Feedback != "" {
				fmt.Fprintln(out, result.Feedback)
			}
			if err != nil {
				fmt.Fprintln(out, err.Error())
			}
			if result.Exit {
				return nil
			}
			fmt.Fprint(out, prompt)
		}
	}
}

func newPublisher(cfg config.Kafka, log *slog.Logger) (service.ChangePublisher, func(), error) {
	if len(cfg.Brokers) == 0 {
		return events.NopPublisher{}, func() {}, nil
	}
	p, err := producer.New(producer.DefaultConfig(cfg.Brokers...), log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := p.Close(); err != nil {
			log.Warn("failed to close kafka producer", "error", err)
		}
	}
	kafka := events.NewKafkaPublisher(p, cfg.Topic, log)
	return events.NewGuardedPublisher(kafka, circuit.New("kafka"), log), closeFn, nil
}
