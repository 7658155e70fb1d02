package workerpool

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/pullcorpus/pullcorpus/corpus-golib/errors"
	"github.com/stretchr/testify/require"
)

func Test_RunJobs(t *testing.T) {
	pool := New(5)

	var jobs []Job
	var completed int32
	for i := 0; i < 15; i++ {
		jobs = append(jobs, func() error {
			time.Sleep(50 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		})
	}

	pool.Add(jobs)
	pool.Wait()
	require.EqualValues(t, len(jobs), completed, "expected all jobs to be completed")
}

func Test_StopWait(t *testing.T) {
	pool := New(5)

	var jobs []Job
	for i := 0; i < 15; i++ {
		jobs = append(jobs, func() error {
			time.Sleep(50 * time.Millisecond)
			return nil
		})
	}

	pool.Add(jobs)
	<-time.After(50 * time.Millisecond)
	pool.Stop()
	pool.Wait()
}

func Test_WaitReturnsFirstError(t *testing.T) {
	pool := New(2)
	defer pool.Stop()

	boom := errors.New("boom")
	pool.Add([]Job{
		func() error { return nil },
		func() error { return boom },
		func() error { return nil },
	})

	require.Equal(t, boom, pool.Wait())
}

func Test_AddOne(t *testing.T) {
	pool := New(1)
	defer pool.Stop()

	var ran int32
	pool.AddOne(func() error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	require.NoError(t, pool.Wait())
	require.EqualValues(t, 1, ran)
}
