package prompt

import (
	"encoding/json"
	"fmt"

	"gentestx/internal/domain"
)

// Request is one outbound chat request: a system instruction and a user message
type Request struct {
	System string
	User   string
}

// AnalysisRequest asks the model to analyze the code and list test cases as JSON.
func AnalysisRequest(sourceCode string, lang domain.Language) Request {
	system := fmt.Sprintf(`You are a code analysis expert that specializes in generating comprehensive test cases.
Analyze the provided %s code and identify all possible test scenarios.`, lang)

	user := fmt.Sprintf(`Please analyze the following %s code and provide a detailed analysis of its functionality,
edge cases, and potential bugs. Then, generate comprehensive test cases that cover all possible scenarios.

Here's the code:

%s

For your response, please provide:
1. A brief analysis of what the code does
2. Identification of key functions, classes, and methods
3. Potential edge cases and error scenarios
4. A comprehensive list of test cases in JSON format with the following structure:
   {
     "testCases": [
       {
         "description": "Test case description",
         "functionToTest": "functionName",
         "inputs": [input values or description],
         "expectedOutput": expected result,
         "scenario": "normal/edge case/error handling"
       }
     ]
   }
`, lang, fence(sourceCode, lang))

	return Request{System: system, User: user}
}

// GenerationRequest asks the model to render test cases as runnable test code.
// An empty cases slice switches to a generic "cover every scenario" instruction.
func GenerationRequest(sourceCode string, lang domain.Language, cases []domain.TestCase, framework string) Request {
	system := fmt.Sprintf("You are a test code generation expert. Generate comprehensive test code for the provided source code using the %s testing framework for %s.", framework, lang)

	plan := "Generate all possible test cases covering normal scenarios, edge cases, and error handling."
	if len(cases) > 0 {
		data, err := json.MarshalIndent(cases, "", "  ")
		if err == nil {
			plan = "Based on the analysis, here are the test cases to implement:\n" + string(data)
		}
	}

	user := fmt.Sprintf(`Generate comprehensive test code for the following %s code using the %s testing framework.

Source code:
%s

%s

Please provide only the complete, ready-to-use test code without explanations. Make sure to:
1. Include all necessary imports
2. Create proper test setup and teardown if needed
3. Implement all test cases with clear assertions
4. Follow best practices for %s
5. Include comments explaining each test case
`, lang, framework, fence(sourceCode, lang), plan, framework)

	return Request{System: system, User: user}
}

func fence(code string, lang domain.Language) string {
	return "```" + string(lang) + "\n" + code + "\n```"
}
