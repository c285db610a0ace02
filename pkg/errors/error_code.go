package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidInput         ErrorCode = 101
	ErrCodeMissingColumn        ErrorCode = 102
	ErrCodeInvalidConfiguration ErrorCode = 103

	// Data/Resource errors (200-299)
	ErrCodeNoDataFound           ErrorCode = 200
	ErrCodeQueryFailed           ErrorCode = 201
	ErrCodeDataSourceUnavailable ErrorCode = 202

	// Metrics errors (300-399)
	ErrCodeMetricsNotComputable ErrorCode = 300

	// Market data errors (700-799)
	ErrCodeMarketDataFetchFailed ErrorCode = 700
	ErrCodeMarketDataWriteFailed ErrorCode = 701
	ErrCodeInvalidTimespan       ErrorCode = 702
	ErrCodeInvalidProvider       ErrorCode = 703
)
