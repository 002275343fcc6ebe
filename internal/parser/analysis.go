package parser

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"gentestx/internal/domain"
)

var (
	fencedJSONPattern = regexp.MustCompile("(?s)```json(.*?)```")
	bareJSONPattern   = regexp.MustCompile(`(?s)\{.*"testCases".*\}`)
	testCaseHeader    = regexp.MustCompile(`Test Case \d+:`)
	fieldLabel        = regexp.MustCompile(`(?i)(description|function|input|expected|scenario):`)
)

// AnalysisParser extracts test cases from model analysis text. Strategies are
// tried in order and the first one that succeeds wins:
//  1. a ```json fence (or a bare {...} span mentioning "testCases") decoded as JSON
//  2. "Test Case N:" blocks with labeled fields
//  3. nothing: an empty slice
type AnalysisParser struct{}

// NewAnalysisParser creates a new AnalysisParser
func NewAnalysisParser() *AnalysisParser {
	return &AnalysisParser{}
}

// Parse never fails. Text without recognizable structure yields an empty slice.
func (p *AnalysisParser) Parse(analysis string) []domain.TestCase {
	cases, _ := p.ParseWithStrategy(analysis)
	return cases
}

// ParseWithStrategy is Parse that also reports which strategy matched.
func (p *AnalysisParser) ParseWithStrategy(analysis string) ([]domain.TestCase, Strategy) {
	if cases, ok := p.parseJSON(analysis); ok {
		return cases, StrategyJSON
	}
	if cases := p.parseLabeled(analysis); len(cases) > 0 {
		return cases, StrategyLabeled
	}
	return []domain.TestCase{}, StrategyNone
}

type jsonTestCase struct {
	Description    json.RawMessage `json:"description"`
	FunctionToTest json.RawMessage `json:"functionToTest"`
	Inputs         json.RawMessage `json:"inputs"`
	ExpectedOutput json.RawMessage `json:"expectedOutput"`
	Scenario       json.RawMessage `json:"scenario"`
}

type jsonAnalysis struct {
	TestCases []jsonTestCase `json:"testCases"`
}

// parseJSON reports ok=false when no candidate exists or it is not valid JSON,
// so the caller falls through to the labeled strategy.
func (p *AnalysisParser) parseJSON(analysis string) ([]domain.TestCase, bool) {
	candidate := ""
	if m := fencedJSONPattern.FindStringSubmatch(analysis); m != nil {
		candidate = m[1]
	} else if m := bareJSONPattern.FindString(analysis); m != "" {
		candidate = m
	} else {
		return nil, false
	}

	var data jsonAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), &data); err != nil {
		return nil, false
	}

	cases := make([]domain.TestCase, 0, len(data.TestCases))
	for _, tc := range data.TestCases {
		cases = append(cases, domain.TestCase{
			Description:    jsonText(tc.Description),
			FunctionToTest: jsonText(tc.FunctionToTest),
			Inputs:         jsonText(tc.Inputs),
			ExpectedOutput: jsonText(tc.ExpectedOutput),
			Scenario:       jsonText(tc.Scenario),
		})
	}
	return cases, true
}

// jsonText renders a JSON value as text: strings are unquoted, anything else
// (lists, numbers, objects) is kept as compact JSON.
func jsonText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

func (p *AnalysisParser) parseLabeled(analysis string) []domain.TestCase {
	headers := testCaseHeader.FindAllStringIndex(analysis, -1)
	if len(headers) == 0 {
		return nil
	}

	cases := make([]domain.TestCase, 0, len(headers))
	for i, h := range headers {
		end := len(analysis)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		cases = append(cases, parseBlock(analysis[h[0]:end]))
	}
	return cases
}

// parseBlock locates each label independently. When a label repeats inside a
// block the first occurrence wins, and every value stops at the next label of
// any name, including a repeat of its own.
func parseBlock(block string) domain.TestCase {
	matches := fieldLabel.FindAllStringSubmatchIndex(block, -1)
	fields := make(map[string]string, 5)

	for i, m := range matches {
		name := strings.ToLower(block[m[2]:m[3]])
		if _, seen := fields[name]; seen {
			continue
		}
		end := len(block)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		fields[name] = strings.TrimSpace(block[m[1]:end])
	}

	return domain.TestCase{
		Description:    fields["description"],
		FunctionToTest: fields["function"],
		Inputs:         fields["input"],
		ExpectedOutput: fields["expected"],
		Scenario:       fields["scenario"],
	}
}
