// Package git provides git context detection using go-git.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/flowtaskapp/flowtask/internal/ports"
)

// Detector implements the ports.GitDetector interface using go-git.
type Detector struct{}

// NewDetector creates a new git detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Ensure Detector implements ports.GitDetector.
var _ ports.GitDetector = (*Detector)(nil)

// Detect resolves the branch and HEAD commit for the repository
// containing workingDir.
func (d *Detector) Detect(ctx context.Context, workingDir string) (*ports.GitInfo, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repoPath, err := findGitRepo(workingDir)
	if err != nil {
		return nil, fmt.Errorf("git repository not found: %w", err)
	}

	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	branch := head.Name().Short()
	if branch == "HEAD" {
		branch = "HEAD detached"
	}

	return &ports.GitInfo{
		Branch: branch,
		Commit: ShortCommit(head.Hash().String()),
	}, nil
}

// IsAvailable reports whether the current directory is inside a git
// repository.
func (d *Detector) IsAvailable() bool {
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}

	_, err = findGitRepo(cwd)
	return err == nil
}

// findGitRepo traverses up the directory tree to find a .git directory.
func findGitRepo(startPath string) (string, error) {
	currentPath := startPath

	for {
		gitPath := filepath.Join(currentPath, ".git")
		info, err := os.Stat(gitPath)
		if err == nil && info.IsDir() {
			return currentPath, nil
		}

		// A plain file here is likely a worktree reference.
		if err == nil && !info.IsDir() {
			content, err := os.ReadFile(gitPath)
			if err == nil && strings.HasPrefix(string(content), "gitdir: ") {
				return currentPath, nil
			}
		}

		parent := filepath.Dir(currentPath)
		if parent == currentPath {
			break
		}
		currentPath = parent
	}

	return "", fmt.Errorf("no .git directory found")
}

// ShortCommit returns a shortened commit hash.
func ShortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
