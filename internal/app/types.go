package app

// Contributor entity.
// Login is the identity key.
type Contributor struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// RepositoryDescriptor describes the repository the pages are sourced from.
// It's constant for a single run.
type RepositoryDescriptor struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	Branch        string `json:"branch"`
	DefaultBranch string `json:"default_branch"`
	Root          string `json:"root"`
}

// FullName returns "owner/name".
func (r RepositoryDescriptor) FullName() string {
	return r.Owner + "/" + r.Name
}

// URL returns repository's github web address.
func (r RepositoryDescriptor) URL() string {
	return "https://github.com/" + r.FullName()
}

// Source describes a single sourcing run.
type Source struct {
	// WorkDir is stripped from page paths before they're joined with repository root.
	WorkDir string

	// Paths are page globs, files or directories. Relative ones are resolved against WorkDir.
	Paths []string

	// Extensions filter files found when a path points to a directory.
	Extensions []string

	// Concurrency is the maximum number of pages fetched at once. Values < 1 mean 1.
	Concurrency int
}

// PageResult is the outcome for a single page.
type PageResult struct {
	Path           string
	RepositoryPath string
	Contributors   []Contributor
	Err            error
}

// Report summarises a sourcing run.
type Report struct {
	Pages  []PageResult
	Failed int
}
