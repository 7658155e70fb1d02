package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	arg "github.com/alexflint/go-arg"
	humanize "github.com/dustin/go-humanize"
	"github.com/google/go-github/github"
	"github.com/joho/godotenv"
	"github.com/pullcorpus/pullcorpus/corpus-golib/envutil"
	"github.com/pullcorpus/pullcorpus/corpus-golib/githubcorpus"
	"github.com/pullcorpus/pullcorpus/corpus-golib/traindata"
	"github.com/pullcorpus/pullcorpus/corpus-golib/workerpool"
)

// api is the part of githubcorpus.Client one pull request task needs.
type api interface {
	githubcorpus.Contents
	GetPull(ctx context.Context, owner, name string, number int) (*github.PullRequest, error)
	ListCommits(ctx context.Context, owner, name string, number int) ([]*github.RepositoryCommit, error)
}

// result is the outcome of processing one pull request. A task either yields
// a record or an error, never both.
type result struct {
	number int
	record traindata.Record
	err    error
}

func process(ctx context.Context, client api, owner, repo string, number int) result {
	log.Printf("processing pull #%d", number)

	pull, err := client.GetPull(ctx, owner, repo, number)
	if err != nil {
		githubcorpus.PullSuccessRate.Miss()
		return result{number: number, err: err}
	}

	commits, err := client.ListCommits(ctx, owner, repo, number)
	if err != nil {
		githubcorpus.PullSuccessRate.Miss()
		return result{number: number, err: err}
	}

	rec, err := traindata.Assemble(ctx, client, owner, repo, pull.GetTitle(), pull.GetBody(), commits)
	if err != nil {
		githubcorpus.PullSuccessRate.Miss()
		return result{number: number, err: err}
	}

	githubcorpus.PullSuccessRate.Hit()
	return result{number: number, record: rec}
}

// collect fans the pull requests out over a bounded worker pool and gathers
// the records as tasks complete. A task that fails is logged and skipped, it
// does not stop its siblings. Record order is completion order.
func collect(ctx context.Context, client api, owner, repo string, pulls []*github.PullRequest, workers int) (records []traindata.Record, skipped int) {
	results := make(chan result)

	pool := workerpool.New(workers)
	var jobs []workerpool.Job
	for _, pull := range pulls {
		number := pull.GetNumber()
		jobs = append(jobs, func() error {
			results <- process(ctx, client, owner, repo, number)
			return nil
		})
	}
	pool.Add(jobs)

	go func() {
		pool.Wait()
		pool.Stop()
		close(results)
	}()

	for res := range results {
		if res.err != nil {
			log.Printf("error processing pull #%d, skipping: %v", res.number, res.err)
			skipped++
			continue
		}
		records = append(records, res.record)
	}
	return records, skipped
}

func watchStats(start time.Time, interval time.Duration) {
	for range time.Tick(interval) {
		var buf bytes.Buffer
		fmt.Fprintln(&buf, "=== Stats ===")
		fmt.Fprintf(&buf, "Time elapsed: %v\n", time.Since(start))
		fmt.Fprintf(&buf, "PullSuccessRate: %v\n",
			githubcorpus.PullSuccessRate.Value())
		fmt.Fprintf(&buf, "GetCommitSuccessRate: %v\n",
			githubcorpus.GetCommitSuccessRate.Value())
		fmt.Fprintf(&buf, "GetBlobSuccessRate: %v\n",
			githubcorpus.GetBlobSuccessRate.Value())

		fmt.Println(buf.String())
	}
}

func main() {
	start := time.Now()
	args := struct {
		Owner      string
		Repo       string
		Workers    int
		TrainFrac  float64
		TrainOut   string
		TestOut    string
		StatsEvery time.Duration
	}{
		Owner:     "facebook",
		Repo:      "react",
		Workers:   5,
		TrainFrac: 0.9,
		TrainOut:  "training_data.json",
		TestOut:   "testing_data.json",
	}
	arg.MustParse(&args)

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
	token := envutil.MustGetenv("GITHUB_TOKEN")

	ctx := context.Background()
	client := githubcorpus.NewClient(token)

	log.Printf("listing closed pulls for %s/%s", args.Owner, args.Repo)
	pulls, err := client.ListClosedPulls(ctx, args.Owner, args.Repo)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("fetched %s pulls", humanize.Comma(int64(len(pulls))))

	if args.StatsEvery > 0 {
		go watchStats(start, args.StatsEvery)
	}

	records, skipped := collect(ctx, client, args.Owner, args.Repo, pulls, args.Workers)

	train, test := traindata.Split(records, args.TrainFrac)
	if err := traindata.WriteFile(args.TrainOut, train); err != nil {
		log.Fatal(err)
	}
	if err := traindata.WriteFile(args.TestOut, test); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s train and %s test records (%s pulls skipped) in %v",
		humanize.Comma(int64(len(train))), humanize.Comma(int64(len(test))),
		humanize.Comma(int64(skipped)), time.Since(start))
}
