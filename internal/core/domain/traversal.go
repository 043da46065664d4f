package domain

// TraversalResult reports the outcome of one multi-root traversal batch.
type TraversalResult struct {
	// Processed is the number of entries (files and directories) that were
	// counted and handed to the operation before the traversal ended.
	Processed int
	// Completed is false when the traversal stopped early, either because the
	// operation asked to stop or because a search hit ended the walk. The
	// remaining siblings and subtrees were not visited.
	Completed bool
}
