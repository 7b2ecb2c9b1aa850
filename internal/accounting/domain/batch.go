package domain

// BatchSuccess records one item that went through. Index is only
// meaningful for create-style batches, where the input has no ID yet.
type BatchSuccess struct {
	Index int   `json:"index,omitempty"`
	ID    int64 `json:"id"`
}

// BatchFailure records one item that failed, keyed by ID or input index.
type BatchFailure struct {
	Index int    `json:"index,omitempty"`
	ID    int64  `json:"id,omitempty"`
	Error string `json:"error"`
}

// BatchResult is the complete success/failure partition of a batch run.
// Batches process the full input sequentially and never abort early, so
// len(Succeeded)+len(Failed) always equals the input length.
type BatchResult struct {
	Succeeded []BatchSuccess `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}
