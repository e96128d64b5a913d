package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AgentRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_runs_total",
			Help: "Total number of agent invocations",
		},
		[]string{"agent"},
	)
	SearchQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Total number of search queries issued",
		},
		[]string{"agent"},
	)
	SearchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_errors_total",
			Help: "Total number of failed search calls (degraded to zero results)",
		},
		[]string{"agent"},
	)
	GenerationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_errors_total",
			Help: "Total number of failed LLM generation calls",
		},
		[]string{"agent"},
	)
	ParseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parse_failures_total",
			Help: "Total number of LLM responses no JSON could be salvaged from",
		},
		[]string{"agent"},
	)
	LLMTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total number of tokens sent to / received from the LLM",
		},
		[]string{"type"}, // type: prompt, completion
	)
)

func StartMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(addr, nil)
}
