package entity

import "github.com/prometheus/client_golang/prometheus"

var mutations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expenses",
		Name:      "entity_mutations_total",
		Help:      "How many records were mutated, partitioned by entity and operation.",
	},
	[]string{"entity", "op"},
)

var orphans = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expenses",
		Name:      "index_orphans_total",
		Help:      "How many index entries without a record were skipped while listing.",
	},
	[]string{"entity"},
)

// Collectors returns the Prometheus collectors of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{mutations, orphans}
}
