package traindata

import (
	"context"
	"fmt"
	"log"

	"github.com/dgryski/go-spooky"
	"github.com/google/go-github/github"
	"github.com/pullcorpus/pullcorpus/corpus-golib/githubcorpus"
)

// Assemble builds the Record for one pull request. It walks commits in the
// order given, fetches the full commit for each to get its changed files, and
// emits one FileRecord per file in the order the API returned them. Blob
// fetches are best effort: a file whose content cannot be fetched keeps its
// diff and simply has no FileContent. A commit whose detail fetch fails
// aborts the record.
func Assemble(ctx context.Context, contents githubcorpus.Contents, owner, name, title, description string, commits []*github.RepositoryCommit) (Record, error) {
	rec := Record{
		Prompt:     BuildPrompt(title, description),
		Completion: []FileRecord{},
	}

	// blobs the pull request lists more than once are fetched once
	blobs := make(map[string][]byte)
	failed := make(map[string]bool)

	for _, commit := range commits {
		full, err := contents.GetCommitByURL(ctx, commit.GetURL())
		if err != nil {
			return Record{}, err
		}

		for _, f := range full.Files {
			fr := FileRecord{
				File:    f.GetFilename(),
				GitDiff: f.GetPatch(),
			}

			if sha := f.GetSHA(); sha != "" {
				key := contentsKey(sha, f.GetFilename())
				if _, ok := blobs[key]; !ok && !failed[key] {
					buf, err := contents.GetBlobRaw(ctx, owner, name, sha)
					if err != nil {
						log.Printf("warning: could not fetch content for file %s: %v", f.GetFilename(), err)
						failed[key] = true
					} else {
						blobs[key] = buf
					}
				}
				if buf, ok := blobs[key]; ok {
					content := string(buf)
					fr.FileContent = &content
				}
			}

			rec.Completion = append(rec.Completion, fr)
		}
	}

	return rec, nil
}

func contentsKey(sha, fn string) string {
	return fmt.Sprintf("%s-%x", sha, spooky.Hash32([]byte(fn)))
}
