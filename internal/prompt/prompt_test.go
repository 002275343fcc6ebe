package prompt

import (
	"strings"
	"testing"

	"gentestx/internal/domain"
)

func TestResolveFramework(t *testing.T) {
	tests := []struct {
		name      string
		framework string
		lang      domain.Language
		expected  string
	}{
		{name: "auto javascript", framework: "auto", lang: domain.LanguageJavaScript, expected: DefaultJSFramework},
		{name: "auto typescript", framework: "auto", lang: domain.LanguageTypeScript, expected: DefaultJSFramework},
		{name: "auto python", framework: "auto", lang: domain.LanguagePython, expected: DefaultPythonFramework},
		{name: "auto java", framework: "auto", lang: domain.LanguageJava, expected: DefaultJVMFramework},
		{name: "auto unknown language", framework: "auto", lang: domain.Language("unknown-lang"), expected: DefaultJSFramework},
		{name: "explicit framework kept", framework: "pytest", lang: domain.LanguageJava, expected: "pytest"},
		{name: "no normalization", framework: "Jest", lang: domain.LanguageJavaScript, expected: "Jest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveFramework(tt.framework, tt.lang); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestAnalysisRequest(t *testing.T) {
	code := "function add(a, b) {\n  return a + b;\n}"
	req := AnalysisRequest(code, domain.LanguageJavaScript)

	if !strings.Contains(req.System, "javascript") {
		t.Errorf("system prompt should name the language: %q", req.System)
	}
	if !strings.Contains(req.User, "```javascript\n"+code+"\n```") {
		t.Errorf("user prompt should embed the code verbatim in a tagged fence:\n%s", req.User)
	}
	if !strings.Contains(req.User, `"testCases"`) {
		t.Error("user prompt should request the testCases JSON structure")
	}
}

func TestGenerationRequest(t *testing.T) {
	code := "def add(a, b):\n    return a + b"

	t.Run("embeds test cases", func(t *testing.T) {
		cases := []domain.TestCase{{Description: "adds", FunctionToTest: "add", Inputs: "[1,2]", ExpectedOutput: "3", Scenario: "normal"}}
		req := GenerationRequest(code, domain.LanguagePython, cases, "pytest")

		if !strings.Contains(req.System, "pytest") || !strings.Contains(req.System, "python") {
			t.Errorf("system prompt should name framework and language: %q", req.System)
		}
		if !strings.Contains(req.User, "```python\n"+code+"\n```") {
			t.Error("user prompt should embed the code in a python fence")
		}
		if !strings.Contains(req.User, "\"functionToTest\": \"add\"") {
			t.Errorf("user prompt should contain pretty-printed test cases:\n%s", req.User)
		}
		if strings.Contains(req.User, "Generate all possible test cases") {
			t.Error("fallback instruction should not appear when test cases exist")
		}
	})

	t.Run("falls back without test cases", func(t *testing.T) {
		req := GenerationRequest(code, domain.LanguagePython, nil, "pytest")
		if !strings.Contains(req.User, "Generate all possible test cases covering normal scenarios, edge cases, and error handling.") {
			t.Errorf("expected fallback instruction:\n%s", req.User)
		}
	})
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tagged fence", input: "```js\nconst x=1;\n```", expected: "const x=1;"},
		{name: "untagged fence", input: "```\nprint(1)\n```\n", expected: "print(1)"},
		{name: "no fence", input: "const y = 2;\n", expected: "const y = 2;"},
		{name: "trailing fence without newline", input: "```python\nassert True```", expected: "assert True"},
		{name: "text around fence", input: "```java\nclass FooTest {}\n```\n", expected: "class FooTest {}"},
		{name: "multiple fences", input: "```js\na();\n```\n```js\nb();\n```", expected: "a();\nb();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
