package store

// Status mirrors the request lifecycle of the most recently settled action
// of a given kind: idle until first use, loading while a call is in flight,
// then succeeded or failed. Terminal on either outcome until the next action.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)
