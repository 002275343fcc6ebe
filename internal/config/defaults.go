package config

const (
	// DefaultWorkspaceRoot is the default workspace root
	DefaultWorkspaceRoot = "."
	// DefaultEndpoint is the chat completion endpoint
	DefaultEndpoint = "https://api.groq.com/openai/v1/chat/completions"
	// DefaultModel is the model identifier sent with every request
	DefaultModel = "llama3-70b-8192"
	// DefaultTemperature is the sampling temperature for both requests
	DefaultTemperature = 0.2
	// DefaultMaxTokens caps the completion size
	DefaultMaxTokens = 4000
	// DefaultOutputLocation is the default placement policy
	DefaultOutputLocation = OutputLocationSameDirectory
	// DefaultTestFramework resolves the framework from the language
	DefaultTestFramework = FrameworkAuto
	// DefaultConfigFile is looked up in the workspace root
	DefaultConfigFile = ".gentestx.yaml"
	// DefaultEnvFile is looked up in the workspace root
	DefaultEnvFile = ".env"
	// DefaultStateDir holds the last generation report
	DefaultStateDir = ".gentestx"
	// DefaultStateFile is the last generation report file name
	DefaultStateFile = "last-run.json"
)

// Placement policies
const (
	OutputLocationSameDirectory = "sameDirectory"
	OutputLocationTestDirectory = "testDirectory"
)

// Test framework selectors
const (
	FrameworkAuto   = "auto"
	FrameworkJest   = "jest"
	FrameworkPytest = "pytest"
	FrameworkJUnit  = "junit"
)

// Environment variables read by Load
const (
	EnvAPIKey         = "GENTESTX_API_KEY"
	EnvGroqAPIKey     = "GROQ_API_KEY"
	EnvOutputLocation = "GENTESTX_OUTPUT_LOCATION"
	EnvTestFramework  = "GENTESTX_TEST_FRAMEWORK"
	EnvEndpoint       = "GENTESTX_ENDPOINT"
	EnvModel          = "GENTESTX_MODEL"
)

// DefaultPathsToIgnore are the directories skipped when scanning for source files
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
	"dist",
	"build",
	"target",
	"coverage",
	"__pycache__",
	"venv",
	".venv",
}

// KnownFrameworks lists the accepted test framework selectors
var KnownFrameworks = []string{
	FrameworkAuto,
	FrameworkJest,
	FrameworkPytest,
	FrameworkJUnit,
}
