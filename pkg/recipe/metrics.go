package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Read path
	searchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipeapi_searches_total",
			Help: "Total number of recipe searches",
		},
	)
	lookupMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipeapi_lookup_misses_total",
			Help: "Total number of fetch-by-id lookups for unknown ids",
		},
	)

	// Write path
	recipesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipeapi_recipes_created_total",
			Help: "Total number of recipes created",
		},
	)
	storeRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipeapi_store_records",
			Help: "Current number of records in the store",
		},
	)
)
