package githubcorpus

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/go-github/github"
	"github.com/pullcorpus/pullcorpus/corpus-golib/errors"
	"golang.org/x/oauth2"
)

const perPage = 100

// Client wraps an authenticated github API client with the calls needed to
// turn a repo's pull requests into training records.
type Client struct {
	gh *github.Client
}

// NewClient builds a Client around the provided access token. The token is
// passed in explicitly, this package never reads it from the environment.
func NewClient(token string) *Client {
	gh := github.NewClient(
		oauth2.NewClient(context.Background(),
			oauth2.StaticTokenSource(
				&oauth2.Token{
					AccessToken: token,
				},
			),
		),
	)
	return &Client{gh: gh}
}

// ListClosedPulls returns the first page of closed pull requests for
// owner/name. Later pages are not fetched.
func (c *Client) ListClosedPulls(ctx context.Context, owner, name string) ([]*github.PullRequest, error) {
	opts := &github.PullRequestListOptions{
		State: "closed",
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: perPage,
		},
	}

	pulls, _, err := c.gh.PullRequests.List(ctx, owner, name, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "error listing closed pulls for %s/%s", owner, name)
	}
	return pulls, nil
}

// GetPull returns the full pull request object for owner/name#number.
func (c *Client) GetPull(ctx context.Context, owner, name string, number int) (*github.PullRequest, error) {
	pull, _, err := c.gh.PullRequests.Get(ctx, owner, name, number)
	if err != nil {
		return nil, errors.Wrapf(err, "error getting pull %s/%s#%d", owner, name, number)
	}
	return pull, nil
}

// ListCommits returns the commits of pull request owner/name#number. The
// Files field of each commit is not populated, clients must call
// GetCommitByURL to get it.
func (c *Client) ListCommits(ctx context.Context, owner, name string, number int) ([]*github.RepositoryCommit, error) {
	commits, _, err := c.gh.PullRequests.ListCommits(ctx, owner, name, number, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error listing commits for pull %s/%s#%d", owner, name, number)
	}
	return commits, nil
}

// GetCommitByURL implements Contents. The url must be the absolute commit URL
// as returned on the commits of a pull request.
func (c *Client) GetCommitByURL(ctx context.Context, url string) (*github.RepositoryCommit, error) {
	req, err := c.gh.NewRequest("GET", url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error building request for commit at %s", url)
	}

	var commit github.RepositoryCommit
	if _, err := c.gh.Do(ctx, req, &commit); err != nil {
		GetCommitSuccessRate.Miss()
		return nil, errors.Wrapf(err, "error getting commit at %s", url)
	}
	GetCommitSuccessRate.Hit()

	return &commit, nil
}

// GetBlobRaw implements Contents. It requests the raw representation of the
// blob, so the result is file text rather than a base64 JSON envelope.
func (c *Client) GetBlobRaw(ctx context.Context, owner, name, sha string) ([]byte, error) {
	u := fmt.Sprintf("repos/%s/%s/git/blobs/%s", owner, name, sha)
	req, err := c.gh.NewRequest("GET", u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "error building request for blob %s of %s/%s", sha, owner, name)
	}
	req.Header.Set("Accept", "application/vnd.github.v3.raw")

	var buf bytes.Buffer
	if _, err := c.gh.Do(ctx, req, &buf); err != nil {
		GetBlobSuccessRate.Miss()
		return nil, errors.Wrapf(err, "error getting blob %s of %s/%s", sha, owner, name)
	}
	GetBlobSuccessRate.Hit()

	return buf.Bytes(), nil
}
