package catalog

import "strings"

// GitHubBaseURL prefixes repository links given in owner/name form
const GitHubBaseURL = "https://github.com/"

// RepositoryLink resolves a plugin's repository field to an openable URL.
// Full URLs pass through, owner/name shorthands are expanded to GitHub.
func RepositoryLink(repositoryURL string) (string, error) {
	url := strings.TrimSpace(repositoryURL)
	if url == "" {
		return "", ErrNoRepository
	}

	if strings.HasPrefix(url, "http") {
		return url, nil
	}

	if strings.Contains(url, "/") {
		return GitHubBaseURL + url, nil
	}

	return "", ErrInvalidRepository
}
