/*
Package chain evaluates a resolution chain: an action.Table naming an ordered list of
sources together with the Source adapters which answer for those names.

Sources are queried strictly in table order, one at a time. After each lookup the
step's Action for the outcome status decides what happens next:

	return    Success: the chain stops and the result is replaced by that source's
	          records. Anything merged by earlier steps is dropped. Any other
	          status: the chain stops and resolution fails.
	merge     Success records are added, without duplicates, to the result and
	          the chain moves on. An unsuccessful merge step also moves on.
	continue  The outcome is ignored and the chain moves on.

When the chain runs off the end the merged records, if any, are the result. If nothing
was merged and the last step's action was continue, the most recent successful outcome
is the result. Otherwise resolution fails with ErrChainExhausted.

An Evaluator holds no mutable state so one may be used repeatedly, and every evaluation
with the same inputs produces the same result. Callers wanting concurrent resolutions
should still construct an Evaluator per goroutine with its own sources as adapters are
not required to be concurrency safe.
*/
package chain
