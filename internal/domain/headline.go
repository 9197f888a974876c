package domain

// SourceHeadlines groups cleaned headlines by the outlet they were scraped from.
type SourceHeadlines struct {
	Source    string
	Headlines []string
}

// SourceBatch is the raw output of one outlet before normalization.
type SourceBatch struct {
	Source     string
	Candidates []string
}

// Category is a named keyword set of the classification taxonomy.
type Category struct {
	Name     string
	Keywords []string
}

// CategoryScore is the classifier result for a single category.
type CategoryScore struct {
	Name string
	Hits int
	Heat int
}
