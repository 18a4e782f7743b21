package iqr

const (
	DefaultLeft  = 1.5
	DefaultRight = 1.5

	Quartile1Probability = 0.25
	Quartile3Probability = 0.75
)
