package domain

// TestCase is one proposed test extracted from the model's analysis.
// Scenario is free text ("normal", "edge case", "error handling") and is not enforced.
type TestCase struct {
	Description    string `json:"description"`
	FunctionToTest string `json:"functionToTest"`
	Inputs         string `json:"inputs"`
	ExpectedOutput string `json:"expectedOutput"`
	Scenario       string `json:"scenario"`
}

// SourceFile is a file submitted for test generation
type SourceFile struct {
	Path     string   // Absolute or workspace-relative path
	Language Language // Normalized language
	Content  string   // UTF-8 source text
}
