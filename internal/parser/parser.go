package parser

import "gentestx/internal/domain"

// Parser turns free-form analysis text into test cases
type Parser interface {
	Parse(analysis string) []domain.TestCase
}

// Strategy names the extraction pass that produced a result
type Strategy string

const (
	StrategyJSON    Strategy = "json"
	StrategyLabeled Strategy = "labeled"
	StrategyNone    Strategy = "none"
)
