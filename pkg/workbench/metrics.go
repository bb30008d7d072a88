package workbench

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry *prometheus.Registry

	// Counters
	nextConnectionID prometheus.CounterFunc

	// Gauges
	openConnections prometheus.GaugeFunc
	savedTheorems   prometheus.GaugeFunc

	// Latency histograms
	proveLatency   prometheus.Summary
	extractLatency prometheus.Summary
	saveLatency    prometheus.Summary
	loadLatency    prometheus.Summary
}

func newMetrics(wb *Workbench) *metrics {
	m := &metrics{
		nextConnectionID: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "next_connection_id",
				Help: "number of connections to this server over its lifetime",
			},
			func() float64 {
				return float64(wb.nextConnectionID)
			},
		),
		openConnections: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_connections",
				Help: "number of connections currently open",
			},
			func() float64 {
				return float64(len(wb.connections))
			},
		),
		savedTheorems: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "saved_theorems",
				Help: "number of theorems in the store",
			},
			func() float64 {
				return float64(wb.store.count())
			},
		),
		proveLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "prove_latency_ns",
				Help: "latency of proof search per statement",
			},
		),
		extractLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "extract_latency_ns",
				Help: "latency of term extraction (and normalization) per statement",
			},
		),
		saveLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "save_latency_ns",
				Help: "latency to persist a theorem",
			},
		),
		loadLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "load_latency_ns",
				Help: "latency to read a theorem record",
			},
		),
	}
	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(prometheus.NewProcessCollector(os.Getpid(), ""))
	reg.MustRegister(prometheus.NewGoCollector())

	reg.MustRegister(m.nextConnectionID)
	reg.MustRegister(m.openConnections)
	reg.MustRegister(m.savedTheorems)
	reg.MustRegister(m.proveLatency)
	reg.MustRegister(m.extractLatency)
	reg.MustRegister(m.saveLatency)
	reg.MustRegister(m.loadLatency)
	return m
}
