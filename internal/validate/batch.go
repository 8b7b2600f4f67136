package validate

import (
	"context"
	"sync"

	"letterrush/internal/model"
)

// CheckAll validates a batch of answers concurrently and returns one verdict
// per request, in the same positional order as the input. Results are indexed
// back into a pre-sized slice, so internal completion order never affects
// output order. The batch completes only when every answer has completed;
// each answer's own source calls are independently timeout-bounded.
func (v *Validator) CheckAll(ctx context.Context, reqs []model.AnswerRequest) []model.AnswerVerdict {
	if len(reqs) == 0 {
		return []model.AnswerVerdict{}
	}

	verdicts := make([]model.AnswerVerdict, len(reqs))
	semaphore := make(chan struct{}, v.maxWorkers)
	var wg sync.WaitGroup

	for i, req := range reqs {
		wg.Add(1)
		go func(idx int, r model.AnswerRequest) {
			defer wg.Done()

			verdict := model.AnswerVerdict{
				Category: r.Category,
				Answer:   r.Answer,
			}

			select {
			case <-ctx.Done():
				// Cancelled before this answer started: no evidence, reject.
				verdicts[idx] = verdict
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			verdict.Valid = v.Check(ctx, r)
			verdicts[idx] = verdict
		}(i, req)
	}

	wg.Wait()
	return verdicts
}
