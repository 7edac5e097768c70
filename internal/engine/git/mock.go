package git

import (
	"context"
)

// MockService is a test double for git.Service.
type MockService struct {
	Diff        string
	DiffErr     error
	Files       []string
	FilesErr    error
	Branch      string
	BranchErr   error
	HookInstErr error
	HookRemErr  error

	// InstalledWith records the execPath passed to InstallHook.
	InstalledWith string
}

// StagedDiff returns the configured diff.
func (m *MockService) StagedDiff(_ context.Context) (string, error) {
	return m.Diff, m.DiffErr
}

// StagedFiles returns the configured file list.
func (m *MockService) StagedFiles(_ context.Context) ([]string, error) {
	return m.Files, m.FilesErr
}

// CurrentBranch returns the configured branch name.
func (m *MockService) CurrentBranch(_ context.Context) (string, error) {
	return m.Branch, m.BranchErr
}

// InstallHook records the exec path and returns the configured error.
func (m *MockService) InstallHook(_ context.Context, execPath string) error {
	m.InstalledWith = execPath
	return m.HookInstErr
}

// RemoveHook returns the configured error.
func (m *MockService) RemoveHook(_ context.Context) error {
	return m.HookRemErr
}
