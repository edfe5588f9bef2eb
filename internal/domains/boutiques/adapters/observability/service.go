package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	storetypes "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/application/types"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/domain"
	"github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/ports"
)

const tracerName = "github.com/Apurer/go-gin-boutique-api/internal/domains/boutiques/adapters/observability/service"

// Service decorates the boutique service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core boutique service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*domain.Store, error) {
	ctx, span := s.tracer.Start(ctx, "BoutiqueService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list stores")
	}
	span.SetAttributes(attribute.Int("store.count", len(result)))
	s.logInfo(ctx, "stores listed", slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) FindByName(ctx context.Context, name string) ([]*domain.Store, error) {
	ctx, span := s.tracer.Start(ctx, "BoutiqueService.FindByName", trace.WithAttributes(attribute.String("store.name", name)))
	defer span.End()

	result, err := s.inner.FindByName(ctx, name)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to find stores by name", slog.String("store.name", name))
	}
	span.SetAttributes(attribute.Int("store.count", len(result)))
	s.logInfo(ctx, "stores found by name", slog.String("store.name", name), slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	ctx, span := s.tracer.Start(ctx, "BoutiqueService.GetByID", trace.WithAttributes(attribute.Int64("store.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load store", slog.Int64("store.id", id))
	}
	return result, nil
}

func (s *Service) SortByOpinion(ctx context.Context, input storetypes.OpinionRange) ([]*domain.Store, error) {
	ctx, span := s.tracer.Start(ctx, "BoutiqueService.SortByOpinion",
		trace.WithAttributes(attribute.Int("opinion.min", int(input.Min)), attribute.Int("opinion.max", int(input.Max))))
	defer span.End()

	result, err := s.inner.SortByOpinion(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to filter stores by opinion",
			slog.Int("opinion.min", int(input.Min)), slog.Int("opinion.max", int(input.Max)))
	}
	span.SetAttributes(attribute.Int("store.count", len(result)))
	s.logInfo(ctx, "stores filtered by opinion",
		slog.Int("opinion.min", int(input.Min)), slog.Int("opinion.max", int(input.Max)), slog.Int("count", len(result)))
	return result, nil
}

func (s *Service) Create(ctx context.Context, input storetypes.CreateStoreInput) (*domain.Store, error) {
	ctx, span := s.tracer.Start(ctx, "BoutiqueService.Create",
		trace.WithAttributes(attribute.Bool("store.placeholder", input.IsEmpty())))
	defer span.End()

	s.logInfo(ctx, "creating store", slog.Bool("placeholder", input.IsEmpty()))
	result, err := s.inner.Create(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create store")
	}
	span.SetAttributes(attribute.Int64("store.id", result.ID))
	s.metrics.recordCreated(ctx)
	s.logInfo(ctx, "store created", slog.Int64("store.id", result.ID))
	return result, nil
}

func (s *Service) Update(ctx context.Context, input storetypes.UpdateStoreInput) (*domain.Store, error) {
	ctx, span := s.tracer.Start(ctx, "BoutiqueService.Update", trace.WithAttributes(attribute.Int64("store.id", input.ID)))
	defer span.End()

	s.logInfo(ctx, "updating store", slog.Int64("store.id", input.ID))
	result, err := s.inner.Update(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update store", slog.Int64("store.id", input.ID))
	}
	s.metrics.recordUpdated(ctx)
	if result.Opinion != nil {
		span.SetAttributes(attribute.Int("store.opinion", int(*result.Opinion)))
	}
	s.logInfo(ctx, "store updated", slog.Int64("store.id", result.ID))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "BoutiqueService.Delete", trace.WithAttributes(attribute.Int64("store.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting store", slog.Int64("store.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete store", slog.Int64("store.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "store deleted", slog.Int64("store.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	created metric.Int64Counter
	updated metric.Int64Counter
	deleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	created, _ := m.Int64Counter("boutiques.service.created", metric.WithDescription("Number of stores created"))
	updated, _ := m.Int64Counter("boutiques.service.updated", metric.WithDescription("Number of stores rated"))
	deleted, _ := m.Int64Counter("boutiques.service.deleted", metric.WithDescription("Number of stores deleted"))
	return serviceMetrics{created: created, updated: updated, deleted: deleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context) {
	if m.created != nil {
		m.created.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.updated != nil {
		m.updated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.deleted != nil {
		m.deleted.Add(ctx, 1)
	}
}

var _ ports.Service = (*Service)(nil)
