package prompt

import "gentestx/internal/domain"

// Framework defaults per ecosystem
const (
	DefaultJSFramework     = "jest"
	DefaultPythonFramework = "pytest"
	DefaultJVMFramework    = "junit"

	// FrameworkAuto asks ResolveFramework to pick the language default
	FrameworkAuto = "auto"
)

// DefaultFramework returns the conventional framework for a language.
// Unknown languages get the JavaScript default.
func DefaultFramework(lang domain.Language) string {
	switch lang {
	case domain.LanguageJavaScript, domain.LanguageTypeScript:
		return DefaultJSFramework
	case domain.LanguagePython:
		return DefaultPythonFramework
	case domain.LanguageJava:
		return DefaultJVMFramework
	default:
		return DefaultJSFramework
	}
}

// ResolveFramework replaces the "auto" selector with the language default.
// Any other value is returned untouched.
func ResolveFramework(framework string, lang domain.Language) string {
	if framework == FrameworkAuto {
		return DefaultFramework(lang)
	}
	return framework
}
