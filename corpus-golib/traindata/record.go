package traindata

import "fmt"

// FileRecord pairs one changed file with the diff the commit applied to it
// and, when it could be fetched, the contents of the blob the commit listed
// for the file. FileContent is nil when the file carried no blob sha or the
// blob fetch failed, in which case the key is omitted from the JSON.
type FileRecord struct {
	File        string  `json:"file"`
	GitDiff     string  `json:"git_diff"`
	FileContent *string `json:"file_content,omitempty"`
}

// Record is one prompt/completion pair. One record is produced per pull
// request, with one FileRecord per changed file across all of its commits.
type Record struct {
	Prompt     string       `json:"prompt"`
	Completion []FileRecord `json:"completion"`
}

// BuildPrompt formats the pull request title and description into the prompt
// of a Record.
func BuildPrompt(title, description string) string {
	return fmt.Sprintf("issue: %s | description: %s", title, description)
}
