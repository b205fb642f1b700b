package gsmarena

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"gsmarena-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/PuerkitoBio/purell"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/publicsuffix"
)

const (
	brandsEndpoint = "makers.php3"

	selectorBrandCells   = "div.st-text table td"
	selectorBrandDevices = "div.makers ul li"
)

const normalizeFlags = purell.FlagsSafe | purell.FlagRemoveFragment

// absolutize resolves href against base and normalizes the result.
func absolutize(base *url.URL, href string) (string, bool) {
	link, ok := resolveHref(base, href)
	if !ok {
		return "", false
	}
	return purell.NormalizeURL(link, normalizeFlags), true
}

// brandName is the anchor's own text, the nested device count excluded.
func brandName(anchor *goquery.Selection) string {
	name := htmlutil.OwnText(anchor)
	if name == "" {
		name = htmlutil.CleanText(anchor.Text())
	}
	return name
}

// ListBrands reads the brand directory.
func (s Scraper) ListBrands(ctx context.Context) ([]Brand, error) {
	ctx, span := tracer.Start(ctx, "ListBrands")
	defer span.End()

	doc, err := s.fetcher.Fetch(ctx, brandsEndpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch brand directory")
		s.tel.ReportBroken(report_catalog_list_brands, err)
		return nil, fmt.Errorf("list brands: %w", err)
	}

	brands := []Brand{}
	doc.Find(selectorBrandCells).Each(func(_ int, td *goquery.Selection) {
		anchor := td.Find("a").First()
		name := brandName(anchor)
		href := strings.TrimSpace(anchor.AttrOr("href", ""))
		if name == "" || href == "" {
			return
		}
		link, ok := absolutize(s.baseUrl, href)
		if !ok {
			s.tel.ReportDebug(report_catalog_row_skipped, href)
			return
		}

		brands = append(brands, Brand{
			Name:        name,
			Url:         link,
			DeviceCount: strings.TrimSpace(td.Find("span").Text()),
		})
	})

	s.tel.ReportCount(report_catalog_list_brands, int64(len(brands)))
	return brands, nil
}

// sameSite reports whether host belongs to the site of baseHost: the host
// itself, its registrable domain or any subdomain of it. Hosts without a
// registrable domain (ip addresses, localhost) must match exactly.
func sameSite(host, baseHost string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	baseHost = strings.ToLower(strings.TrimSuffix(baseHost, "."))
	if host == baseHost {
		return true
	}
	if net.ParseIP(baseHost) != nil {
		return false
	}
	site, err := publicsuffix.EffectiveTLDPlusOne(baseHost)
	if err != nil {
		return false
	}
	return host == site || strings.HasSuffix(host, "."+site)
}

// checkBrandUrl only admits absolute http(s) urls on the upstream site, so
// callers cannot point the fetcher at arbitrary servers.
func (s Scraper) checkBrandUrl(brandUrl string) (*url.URL, error) {
	link, err := url.Parse(strings.TrimSpace(brandUrl))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUrl, err.Error())
	}
	if link.Scheme != "http" && link.Scheme != "https" {
		return nil, fmt.Errorf("%w: '%s' is not an http(s) url", ErrInvalidUrl, brandUrl)
	}
	if !sameSite(link.Hostname(), s.baseUrl.Hostname()) {
		return nil, fmt.Errorf("%w: '%s' is not on %s", ErrInvalidUrl, brandUrl, s.baseUrl.Hostname())
	}
	return link, nil
}

// ListDevicesByBrand reads the device listing of one brand page.
func (s Scraper) ListDevicesByBrand(ctx context.Context, brandUrl string) ([]CatalogDevice, error) {
	ctx, span := tracer.Start(ctx, "ListDevicesByBrand")
	defer span.End()
	span.SetAttributes(attribute.String("brand.url", brandUrl))

	link, err := s.checkBrandUrl(brandUrl)
	if err != nil {
		s.tel.ReportDebug(report_catalog_brand_url, err)
		return nil, err
	}

	doc, err := s.fetcher.Fetch(ctx, link.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch brand page")
		s.tel.ReportBroken(report_catalog_list_devices, err, brandUrl)
		return nil, fmt.Errorf("list devices of '%s': %w", brandUrl, err)
	}

	devices := []CatalogDevice{}
	doc.Find(selectorBrandDevices).Each(func(_ int, li *goquery.Selection) {
		anchors := htmlutil.GetAnchors(ctx, s.baseUrl, li.Find("a").First())
		if len(anchors) == 0 || anchors[0].Name == "" {
			s.tel.ReportDebug(report_catalog_row_skipped, htmlutil.CleanText(li.Text()))
			return
		}

		devices = append(devices, CatalogDevice{
			Name:  anchors[0].Name,
			Url:   purell.NormalizeURL(anchors[0].Url, normalizeFlags),
			Image: strings.TrimSpace(li.Find("img").AttrOr("src", "")),
		})
	})

	s.tel.ReportCount(report_catalog_list_devices, int64(len(devices)))
	return devices, nil
}
