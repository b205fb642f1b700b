package service

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const HeaderRequestId = "X-Request-Id"

// Handler routes the action endpoint along with health and metrics.
func (s Service) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestId, s.logRequest)

	r.Any("/", s.handleAction)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return r
}

// requestId keeps the caller's request id if one is given, otherwise a new
// one is generated. It is echoed back in the response headers.
func (s Service) requestId(c *gin.Context) {
	id := c.GetHeader(HeaderRequestId)
	if id == "" {
		id = s.rand.GenerateRequestId()
	}
	c.Set(HeaderRequestId, id)
	c.Header(HeaderRequestId, id)
	c.Next()
}

func (s Service) logRequest(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.tel.ReportDebug(
		report_request,
		c.GetString(HeaderRequestId),
		c.Request.Method,
		c.Request.URL.RequestURI(),
		c.Writer.Status(),
		time.Since(start).String(),
	)
}
