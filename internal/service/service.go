package service

import (
	"context"

	"gsmarena-backend/internal/components/assert"
	"gsmarena-backend/internal/components/telemetry"
	"gsmarena-backend/internal/gsmarena"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// ScrapingAPI is everything the service needs from the extraction engine.
//
// note: fault injection point
type ScrapingAPI interface {
	ListBrands(ctx context.Context) ([]gsmarena.Brand, error)
	ListDevicesByBrand(ctx context.Context, brandUrl string) ([]gsmarena.CatalogDevice, error)
	GetDeviceDetail(ctx context.Context, id gsmarena.Identifier) (gsmarena.Device, bool)
}

// RandomAPI is an abstraction over any code that generates random values.
// This makes request ids deterministic in tests.
//
// note: fault injection point
type RandomAPI interface {
	GenerateRequestId() string
}

type defaultRandomAPI struct{}

func (defaultRandomAPI) GenerateRequestId() string {
	return uuid.NewString()
}

const (
	report_action_brands  = "action.brands"
	report_action_devices = "action.devices"
	report_action_details = "action.details"
	report_request        = "request"
)

// Service implements the action endpoint over a ScrapingAPI.
type Service struct {
	api      ScrapingAPI
	rand     RandomAPI
	tel      telemetry.API
	registry *prometheus.Registry
	metrics  metrics
}

// NewService creates a Service, its metrics are registered on a registry of
// its own which is exposed under /metrics.
func NewService(api ScrapingAPI, options ...ServiceOption) Service {
	assert.NotNil(api)

	cfg := serviceConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	s := Service{
		api:  api,
		rand: defaultRandomAPI{},
		tel:  telemetry.SlogAPI{},
	}
	if cfg.rand != nil {
		s.rand = cfg.rand
	}
	if cfg.tel != nil {
		s.tel = cfg.tel
	}
	s.tel = telemetry.NewScopedAPI("service", s.tel)

	s.registry = cfg.registry
	ownRegistry := s.registry == nil
	if ownRegistry {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry, ownRegistry)

	return s
}

type serviceConfig struct {
	rand     RandomAPI
	tel      telemetry.API
	registry *prometheus.Registry
}

type ServiceOption func(cfg *serviceConfig)

func WithCustomRandomAPI(rand RandomAPI) ServiceOption {
	return func(cfg *serviceConfig) {
		cfg.rand = rand
	}
}

func WithCustomTelemetryAPI(tel telemetry.API) ServiceOption {
	return func(cfg *serviceConfig) {
		cfg.tel = tel
	}
}

// WithRegistry registers the service's request counter on an existing
// registry. Runtime collectors are left to the registry's owner and services
// sharing a registry share the counter.
func WithRegistry(registry *prometheus.Registry) ServiceOption {
	return func(cfg *serviceConfig) {
		cfg.registry = registry
	}
}
