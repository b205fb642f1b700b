package telemetry

import (
	"fmt"
)

// API is an abstraction over logging/metrics so that the scraping code can be
// asserted against in tests without capturing slog output.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a component that has broken in a way that should be addressed.
	//
	// The `id` names the **component** that broke, not the line of code. If the brand listing
	// fails to fetch, the id is `catalog.list-brands`, and the fetch error goes in params.
	//
	// Formatting rules:
	// 1) all lowercase
	// 2) use underscores for large components
	// 3) use dashes for methods part of a larger component
	//
	// Use ScopedAPI to prefix the package, so the id only needs `<component>.<method>`.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something that is not broken but may be worth investigating,
	// ex. a picture gallery page that could not be fetched.
	ReportWarning(id string, params ...any)

	// ReportDebug reports debug information that is ignored in production.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the count of a specific event at the current time. Counts are
	// points of data over time and should not be summed.
	ReportCount(id string, count int64)
}

// ScopedAPI attaches a namespace to every report of an inner API, the same way a
// prefixed sub-logger would.
type ScopedAPI struct {
	namespace string
	inner     API
}

// NewScopedAPI creates a ScopedAPI out of a given namespace and another api.
func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
