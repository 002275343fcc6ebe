package cli

import "gentestx/internal/config"

// Flags holds command-line flags
type Flags struct {
	APIKey         string
	Framework      string
	OutputLocation string
	Workspace      string
	ConfigPath     string
	NameFilter     string
	Language       string
	DryRun         bool
	View           bool
	Verbose        bool
	LogFile        string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		APIKey:         f.APIKey,
		Framework:      f.Framework,
		OutputLocation: f.OutputLocation,
		Workspace:      f.Workspace,
		ConfigPath:     f.ConfigPath,
		NameFilter:     f.NameFilter,
		Language:       f.Language,
		DryRun:         f.DryRun,
		View:           f.View,
		Verbose:        f.Verbose,
		LogFile:        f.LogFile,
	}
}
