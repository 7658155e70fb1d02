package githubcorpus

import (
	"context"

	"github.com/google/go-github/github"
)

// Contents is the subset of the API used while assembling the record for a
// single pull request.
type Contents interface {
	// GetCommitByURL takes the absolute URL of a commit and returns the full
	// commit object including its changed files
	GetCommitByURL(context.Context, string) (*github.RepositoryCommit, error)
	// GetBlobRaw takes owner, name and a blob sha and returns the raw
	// contents of the blob
	GetBlobRaw(ctx context.Context, owner, name, sha string) ([]byte, error)
}

var _ Contents = &Client{}
