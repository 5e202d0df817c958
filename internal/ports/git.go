package ports

import "context"

// GitInfo describes the repository context a focus session ran in.
type GitInfo struct {
	Branch string
	Commit string
}

// GitDetector reports the git context of a working directory, used to
// annotate completed focus sessions. This is a driven port (implemented
// by adapters).
type GitDetector interface {
	// Detect scans the working directory for git context.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)

	// IsAvailable reports whether a git repository is reachable from the
	// current directory.
	IsAvailable() bool
}
