package primary

import "time"

const (
	// DefaultConfidence fills omitted confidences.
	DefaultConfidence = 0.8

	// DefaultTimeout bounds one call to the analysis service.
	DefaultTimeout = 15 * time.Second

	dateLayout = "2006-01-02"

	maxResponseBytes = 1 << 20
)
