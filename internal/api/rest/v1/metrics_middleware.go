package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/metrics"
)

// RequestMetrics returns a middleware that records request counts and
// latencies on the collector. Unmatched requests share one path label so the
// metric cardinality stays bounded.
func RequestMetrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		started := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		collector.RecordRequest(ctx.Request.Method, path, ctx.Writer.Status(), time.Since(started))
	}
}
