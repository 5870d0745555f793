package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	DonationsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donations_processed_total",
			Help: "Number of donations charged and persisted successfully",
		},
		[]string{"interval"},
	)
	DonationsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donations_failed_total",
			Help: "Number of donation attempts that did not produce a donation",
		},
		[]string{"reason"}, // validation|card_declined|processor_request_invalid|processor_unreachable|processor_auth_failure|processor_unknown|persistence
	)
)

var (
	ProcessorRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_processor_requests_total",
			Help: "Requests issued to the payment processor",
		},
		[]string{"op", "outcome"}, // op: create_customer|create_charge|create_subscription; outcome: ok|error
	)
	ProcessorRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_processor_request_duration_seconds",
			Help:    "Duration of payment processor requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		DonationsProcessed, DonationsFailed,
		ProcessorRequests, ProcessorRequestDuration,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
	)
}
