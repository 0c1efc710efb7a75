package extraction

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var extractionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "launchlist_extractions_total",
		Help: "Extraction pipeline runs by outcome.",
	},
	[]string{"outcome"},
)

const (
	outcomeOK        = "ok"
	outcomeEmpty     = "empty_input"
	outcomeInference = "inference_error"
	outcomeMalformed = "malformed_response"
)
