package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	handsSavedCounter          prometheus.Counter
	handsLoadedCounter         prometheus.Counter
	settlementsComputedCounter prometheus.Counter
	handPublishFailedCounter   prometheus.Counter
}

func (m *metrics) HandSaved() {
	m.handsSavedCounter.Inc()
}

func (m *metrics) HandLoaded() {
	m.handsLoadedCounter.Inc()
}

func (m *metrics) SettlementComputed() {
	m.settlementsComputedCounter.Inc()
}

func (m *metrics) HandPublishFailed() {
	m.handPublishFailedCounter.Inc()
}

var Metrics = &metrics{
	handsSavedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "hands_saved_total",
		Help: "Total number of hand histories saved to the store",
	}),
	handsLoadedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "hands_loaded_total",
		Help: "Total number of hand histories loaded from the store",
	}),
	settlementsComputedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlements_computed_total",
		Help: "Total number of settlement results computed",
	}),
	handPublishFailedCounter: promauto.NewCounter(prometheus.CounterOpts{
		Name: "hand_publish_failed_total",
		Help: "Total number of hand publish failures",
	}),
}
