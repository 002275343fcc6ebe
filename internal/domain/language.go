package domain

import (
	"path/filepath"
	"strings"
)

// Language is a normalized source language name
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
)

// SupportedLanguages lists every language the generator accepts, in display order.
var SupportedLanguages = []Language{
	LanguageJavaScript,
	LanguageTypeScript,
	LanguagePython,
	LanguageJava,
}

// editorLanguageIDs maps editor language identifiers to normalized languages.
var editorLanguageIDs = map[string]Language{
	"javascript":      LanguageJavaScript,
	"typescript":      LanguageTypeScript,
	"python":          LanguagePython,
	"java":            LanguageJava,
	"javascriptreact": LanguageJavaScript,
	"typescriptreact": LanguageTypeScript,
}

var extensionLanguages = map[string]Language{
	".js":   LanguageJavaScript,
	".mjs":  LanguageJavaScript,
	".cjs":  LanguageJavaScript,
	".jsx":  LanguageJavaScript,
	".ts":   LanguageTypeScript,
	".tsx":  LanguageTypeScript,
	".py":   LanguagePython,
	".java": LanguageJava,
}

// LanguageFromID normalizes an editor language id. ok is false for unsupported ids.
func LanguageFromID(id string) (Language, bool) {
	lang, ok := editorLanguageIDs[strings.ToLower(strings.TrimSpace(id))]
	return lang, ok
}

// LanguageFromPath detects the language from a file extension.
func LanguageFromPath(path string) (Language, bool) {
	lang, ok := extensionLanguages[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// String returns the language name
func (l Language) String() string {
	return string(l)
}
