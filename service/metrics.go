package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "bankist_operations_total",
	Help: "Engine operations by operation and outcome.",
}, []string{"operation", "outcome"})

func observe(operation string, err error) {
	operationsTotal.WithLabelValues(operation, outcomeOf(err)).Inc()
}
