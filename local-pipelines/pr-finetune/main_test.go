package main

import (
	"context"
	"testing"

	"github.com/google/go-github/github"
	"github.com/pullcorpus/pullcorpus/corpus-golib/errors"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	pulls       map[int]*github.PullRequest
	commits     map[int][]*github.RepositoryCommit
	fullCommits map[string]*github.RepositoryCommit
	blobs       map[string]string
}

func (f *fakeAPI) GetPull(_ context.Context, owner, name string, number int) (*github.PullRequest, error) {
	pull, ok := f.pulls[number]
	if !ok {
		return nil, errors.New("pull %s/%s#%d not found", owner, name, number)
	}
	return pull, nil
}

func (f *fakeAPI) ListCommits(_ context.Context, owner, name string, number int) ([]*github.RepositoryCommit, error) {
	return f.commits[number], nil
}

func (f *fakeAPI) GetCommitByURL(_ context.Context, url string) (*github.RepositoryCommit, error) {
	commit, ok := f.fullCommits[url]
	if !ok {
		return nil, errors.New("no commit at %s", url)
	}
	return commit, nil
}

func (f *fakeAPI) GetBlobRaw(_ context.Context, owner, name, sha string) ([]byte, error) {
	content, ok := f.blobs[sha]
	if !ok {
		return nil, errors.New("no blob %s", sha)
	}
	return []byte(content), nil
}

func pullRef(number int) *github.PullRequest {
	return &github.PullRequest{Number: github.Int(number)}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		pulls: map[int]*github.PullRequest{
			1: {Number: github.Int(1), Title: github.String("fix a"), Body: github.String("details")},
			2: {Number: github.Int(2), Title: github.String("fix b")},
		},
		commits: map[int][]*github.RepositoryCommit{
			1: {{URL: github.String("c1")}},
			2: {{URL: github.String("c2")}},
		},
		fullCommits: map[string]*github.RepositoryCommit{
			"c1": {Files: []github.CommitFile{{
				Filename: github.String("a.go"),
				Patch:    github.String("+x"),
				SHA:      github.String("blob1"),
			}}},
			"c2": {Files: []github.CommitFile{{
				Filename: github.String("b.go"),
				Patch:    github.String("+y"),
			}}},
		},
		blobs: map[string]string{"blob1": "package a\n"},
	}
}

func Test_Process(t *testing.T) {
	client := newFakeAPI()

	res := process(context.Background(), client, "octo", "hello", 1)
	require.NoError(t, res.err)
	require.Equal(t, 1, res.number)
	require.Equal(t, "issue: fix a | description: details", res.record.Prompt)
	require.Len(t, res.record.Completion, 1)
	require.Equal(t, "a.go", res.record.Completion[0].File)
	require.Equal(t, "package a\n", *res.record.Completion[0].FileContent)
}

func Test_Process_MissingPull(t *testing.T) {
	client := newFakeAPI()

	res := process(context.Background(), client, "octo", "hello", 404)
	require.Error(t, res.err)
}

func Test_Collect_SkipsFailedPulls(t *testing.T) {
	client := newFakeAPI()

	// pull 404 has no detail, its task fails and must not take down the others
	pulls := []*github.PullRequest{pullRef(1), pullRef(404), pullRef(2)}

	records, skipped := collect(context.Background(), client, "octo", "hello", pulls, 5)
	require.Equal(t, 1, skipped)
	require.Len(t, records, 2)

	prompts := map[string]bool{}
	for _, rec := range records {
		prompts[rec.Prompt] = true
	}
	require.True(t, prompts["issue: fix a | description: details"])
	require.True(t, prompts["issue: fix b | description: "])
}

func Test_Collect_NoPulls(t *testing.T) {
	records, skipped := collect(context.Background(), newFakeAPI(), "octo", "hello", nil, 5)
	require.Zero(t, skipped)
	require.Empty(t, records)
}
