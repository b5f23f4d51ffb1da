package models

// Engine configuration
const (
	// MaxQueriesPerHour caps recommendation queries per user per rolling hour.
	MaxQueriesPerHour = 30

	// RecommendationBatchSize is the number of profiles returned per call.
	RecommendationBatchSize = 10

	// CandidateScanLimit caps how many profiles a recommendation call scans.
	// Accepted recall/latency tradeoff: the scan may truncate before enough
	// candidates are found.
	CandidateScanLimit = 100

	// BatchGetLimit is the maximum number of ids per store lookup.
	BatchGetLimit = 30

	// MaxDistanceKm is the default distance cap for filtered discovery.
	MaxDistanceKm = 50.0
)
