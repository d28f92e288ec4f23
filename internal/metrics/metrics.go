// Package metrics counts sign-ins and content edits and exposes them to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is used by the services and the web layer. Nop discards everything.
type Recorder interface {
	RecordSignIn(ok bool)
	// RecordOperation counts a write to one of the editors, such as ("books", "delete").
	RecordOperation(editor, operation string, err error)
	RecordOrphan()
}

type Collector struct {
	signIns    *prometheus.CounterVec
	operations *prometheus.CounterVec
	orphans    prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_sign_ins_total",
			Help: "Sign-in attempts by result.",
		}, []string{"result"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_operations_total",
			Help: "Editor writes by editor, operation and result.",
		}, []string{"editor", "operation", "result"}),
		orphans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_orphaned_blobs_total",
			Help: "Uploaded blobs left without a document referencing them.",
		}),
	}

	reg.MustRegister(c.signIns, c.operations, c.orphans)
	return c
}

func (c *Collector) RecordSignIn(ok bool) {
	c.signIns.WithLabelValues(result(ok)).Inc()
}

func (c *Collector) RecordOperation(editor, operation string, err error) {
	c.operations.WithLabelValues(editor, operation, result(err == nil)).Inc()
}

func (c *Collector) RecordOrphan() {
	c.orphans.Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

type Nop struct{}

func (Nop) RecordSignIn(bool)                     {}
func (Nop) RecordOperation(string, string, error) {}
func (Nop) RecordOrphan()                         {}

// Handler serves the scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
