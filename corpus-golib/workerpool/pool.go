package workerpool

import "sync"

// Job is a unit of work that can be submitted to a Pool.
type Job func() error

// Pool runs jobs across a fixed number of worker goroutines.
type Pool struct {
	jobs    chan Job
	wg      sync.WaitGroup
	stopped chan struct{}
	once    sync.Once

	m   sync.Mutex
	err error
}

// New creates a Pool with the provided number of workers. The workers
// run until Stop is called.
func New(workers int) *Pool {
	pool := &Pool{
		jobs:    make(chan Job),
		stopped: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		go pool.work()
	}
	return pool
}

// Add submits jobs to the pool. It never blocks on the workers, jobs are
// queued until a worker picks them up.
func (p *Pool) Add(jobs []Job) {
	p.wg.Add(len(jobs))
	go func() {
		for _, job := range jobs {
			select {
			case p.jobs <- job:
			case <-p.stopped:
				p.wg.Done()
			}
		}
	}()
}

// AddOne submits a single job to the pool.
func (p *Pool) AddOne(job Job) {
	p.Add([]Job{job})
}

// Wait blocks until all submitted jobs have completed or been discarded by
// Stop. It returns the first error returned by any job, if there was one.
func (p *Pool) Wait() error {
	p.wg.Wait()
	p.m.Lock()
	defer p.m.Unlock()
	return p.err
}

// Stop shuts the pool down. Jobs already running complete, queued jobs are
// discarded. Stop may be called more than once.
func (p *Pool) Stop() {
	p.once.Do(func() {
		close(p.stopped)
	})
}

func (p *Pool) work() {
	for {
		select {
		case <-p.stopped:
			return
		case job := <-p.jobs:
			if err := job(); err != nil {
				p.m.Lock()
				if p.err == nil {
					p.err = err
				}
				p.m.Unlock()
			}
			p.wg.Done()
		}
	}
}
