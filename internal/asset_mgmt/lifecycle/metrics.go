package lifecycle

import (
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"AssetVerse-backend/internal/platform/apierr"
)

var (
	transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetverse_lifecycle_transitions_total",
		Help: "Lifecycle operations by outcome",
	}, []string{"op", "result"})

	compensations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assetverse_lifecycle_compensations_total",
		Help: "Compensating steps run after a partial failure",
	}, []string{"op"})
)

// observe records the outcome of op. API errors are labelled with their code,
// anything else as internal.
func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "internal"
		var api *apierr.APIError
		if errors.As(err, &api) {
			result = strings.ToLower(string(api.Code))
		}
	}
	transitions.WithLabelValues(op, result).Inc()
}
