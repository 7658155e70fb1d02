package githubcorpus

import "github.com/pullcorpus/pullcorpus/corpus-golib/status"

// Stats ...
var (
	Stats                = status.NewSection("githubcorpus")
	GetBlobSuccessRate   = Stats.Ratio("GetBlobSuccessRate")
	GetCommitSuccessRate = Stats.Ratio("GetCommitSuccessRate")
	PullSuccessRate      = Stats.Ratio("PullSuccessRate")
)
