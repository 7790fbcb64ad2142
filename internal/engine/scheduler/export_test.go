package scheduler

// PassEpoch returns the cache epoch the current pass writes into.
// This is exported for testing purposes only.
func (s *Scheduler) PassEpoch() uint64 {
	return s.pass.epoch
}
