package zscore

const (
	DefaultLeft  = 3.0
	DefaultRight = 3.0
)
