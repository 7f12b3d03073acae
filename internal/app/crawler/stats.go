package crawler

import "sync"

// Outcome is the result of processing one word.
type Outcome string

const (
	OutcomeSaved       Outcome = "saved"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeParseFailed Outcome = "parse_failed"
	OutcomeMismatched  Outcome = "mismatched"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeFetchFailed Outcome = "fetch_failed"
	OutcomeSaveFailed  Outcome = "save_failed"
)

// Stats counts word outcomes for one run.
type Stats struct {
	Total         int
	Saved         int
	NotFound      int
	ParseFailed   int
	Mismatched    int
	Skipped       int
	FetchFailed   int
	SaveFailed    int
	SkippedBlocks int
}

// Failed returns the number of words that failed for a reason other than
// the site not knowing them.
func (s Stats) Failed() int {
	return s.ParseFailed + s.FetchFailed + s.SaveFailed
}

type statsRecorder struct {
	mu    sync.Mutex
	stats Stats
}

func (r *statsRecorder) record(o Outcome, skippedBlocks int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Total++
	r.stats.SkippedBlocks += skippedBlocks
	switch o {
	case OutcomeSaved:
		r.stats.Saved++
	case OutcomeNotFound:
		r.stats.NotFound++
	case OutcomeParseFailed:
		r.stats.ParseFailed++
	case OutcomeMismatched:
		r.stats.Mismatched++
	case OutcomeSkipped:
		r.stats.Skipped++
	case OutcomeFetchFailed:
		r.stats.FetchFailed++
	case OutcomeSaveFailed:
		r.stats.SaveFailed++
	}
}

func (r *statsRecorder) snapshot() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}
