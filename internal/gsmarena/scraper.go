package gsmarena

import (
	"net/url"

	"gsmarena-backend/internal/components/assert"
	"gsmarena-backend/internal/components/telemetry"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("gsmarena.internal.gsmarena")

const (
	report_detail_fetch          = "detail.fetch"
	report_pictures_fetch        = "pictures.fetch"
	report_catalog_list_brands   = "catalog.list-brands"
	report_catalog_list_devices  = "catalog.list-devices"
	report_catalog_row_skipped   = "catalog.row-skipped"
	report_catalog_brand_url     = "catalog.brand-url"
	report_detail_spec_sections  = "detail.spec-sections"
	report_detail_pictures_count = "detail.pictures-count"
)

// Scraper is the extraction engine. It holds no per-request state and is
// safe for concurrent use.
type Scraper struct {
	fetcher Fetcher
	baseUrl *url.URL
	tel     telemetry.API
}

// NewScraper creates a Scraper over a fetcher. baseUrl is the site root that
// catalog links are absolutized against and that brand urls must live on.
func NewScraper(fetcher Fetcher, baseUrl *url.URL, opts ...ScraperOption) Scraper {
	assert.NotNil(fetcher)
	assert.AbsoluteUrl(baseUrl)

	var cfg scraperCfg
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.tel == nil {
		cfg.tel = telemetry.SlogAPI{}
	}

	return Scraper{
		fetcher: fetcher,
		baseUrl: baseUrl,
		tel:     telemetry.NewScopedAPI("gsmarena", cfg.tel),
	}
}

type ScraperOption func(cfg *scraperCfg)

type scraperCfg struct {
	tel telemetry.API
}

func WithCustomTelemetryAPI(tel telemetry.API) ScraperOption {
	return func(cfg *scraperCfg) {
		cfg.tel = tel
	}
}
