// Package metrics exposes the simulation's Prometheus instrumentation.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "elevator_sim"

var (
	hallCallsEnqueued = prometheus.NewCounter(prometheus.CounterOpts{
		Name: namespace + "_hall_calls_enqueued_total",
		Help: "Total hall calls accepted by the building.",
	})

	hallCallsAssigned = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: namespace + "_hall_calls_assigned_total",
		Help: "Total hall calls assigned to a car, labeled by scheduling phase.",
	}, []string{"phase"})

	hallCallsTimedOut = prometheus.NewCounter(prometheus.CounterOpts{
		Name: namespace + "_hall_calls_timeout_fallback_total",
		Help: "Total hall calls that reached the opposite-direction timeout fallback.",
	})

	elevatorCurrentFloor = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: namespace + "_elevator_current_floor",
		Help: "Current floor of each elevator car.",
	}, []string{"elevator_id"})

	elevatorDestinationCount = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: namespace + "_elevator_destination_count",
		Help: "Number of committed destinations for each elevator car.",
	}, []string{"elevator_id"})

	tickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    namespace + "_tick_duration_seconds",
		Help:    "Wall-clock time spent processing one simulation tick.",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		hallCallsEnqueued,
		hallCallsAssigned,
		hallCallsTimedOut,
		elevatorCurrentFloor,
		elevatorDestinationCount,
		tickDuration,
	)
}

// HallCallEnqueued records a newly accepted hall call.
func HallCallEnqueued() {
	hallCallsEnqueued.Inc()
}

// HallCallAssigned records a hall call being committed to a car during the
// given scheduling phase ("perfect_match", "normal", or "timeout_fallback").
func HallCallAssigned(phase string) {
	hallCallsAssigned.With(prometheus.Labels{"phase": phase}).Inc()
}

// HallCallTimedOut records a hall call that aged into the Phase 3
// opposite-direction fallback.
func HallCallTimedOut() {
	hallCallsTimedOut.Inc()
}

// ElevatorStatus publishes a car's current floor and destination count.
func ElevatorStatus(elevatorID string, floor, destinations int) {
	elevatorCurrentFloor.With(prometheus.Labels{"elevator_id": elevatorID}).Set(float64(floor))
	elevatorDestinationCount.With(prometheus.Labels{"elevator_id": elevatorID}).Set(float64(destinations))
}

// ObserveTickDuration records how long a tick took to process.
func ObserveTickDuration(seconds float64) {
	tickDuration.Observe(seconds)
}
