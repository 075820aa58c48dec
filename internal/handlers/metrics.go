// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	cssComposeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "themekit_css_compose_seconds",
			Help:    "Time spent composing a stylesheet on a cache miss.",
			Buckets: []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05},
		},
	)
	cssCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "themekit_css_cache_hits_total",
			Help: "Stylesheet requests served from the composed CSS cache.",
		},
	)
	themeChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "themekit_theme_changes_total",
			Help: "Accepted theme preference changes.",
		},
		[]string{"field"},
	)
)

func init() {
	prometheus.MustRegister(cssComposeDuration)
	prometheus.MustRegister(cssCacheHits)
	prometheus.MustRegister(themeChanges)
}

// MetricsHandler exposes the default prometheus registry
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// HealthHandler reports liveness. ping checks the database when set.
func HealthHandler(ping func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unavailable",
					"service": "themekit",
					"error":   err.Error(),
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "themekit",
		})
	}
}
