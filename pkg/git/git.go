// Package git reads commit history from a local repository.
package git

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/sgaunet/bullets"
)

const shortHashLength = 7

var (
	// ErrNoCommits is returned when HEAD does not point at any commit yet.
	ErrNoCommits = errors.New("repository has no commits")
	// ErrDetachedHead is returned when HEAD is not pointing to a branch.
	ErrDetachedHead = errors.New("HEAD is not pointing to a branch")
)

// Commit is the subset of a git commit humantime displays.
type Commit struct {
	// Hash is the full SHA-1 hash of the commit (40 characters).
	Hash string
	// ShortHash is the abbreviated hash for display (first 7 characters).
	ShortHash string
	// Title is the first line of the commit message.
	Title string
	// Author is the author name.
	Author string
	// When is the author timestamp.
	When time.Time
}

// Repository wraps a go-git repository.
type Repository struct {
	repo   *git.Repository
	logger *bullets.Logger
}

// OpenRepository opens the repository containing path, searching parent directories.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo}, nil
}

// SetLogger sets the logger used for debug output.
func (r *Repository) SetLogger(logger *bullets.Logger) {
	r.logger = logger
}

func (r *Repository) debug(msg string) {
	if r.logger != nil {
		r.logger.Debug(msg)
	}
}

// GetCurrentBranch returns the short name of the branch HEAD points to.
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.head()
	if err != nil {
		return "", err
	}

	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}

	return head.Name().Short(), nil
}

func (r *Repository) head() (*plumbing.Reference, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, ErrNoCommits
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference: %w", err)
	}
	return head, nil
}

// RecentCommits returns up to limit commits reachable from HEAD, newest first.
// A limit of zero or less returns the whole history.
func (r *Repository) RecentCommits(limit int) ([]Commit, error) {
	head, err := r.head()
	if err != nil {
		return nil, err
	}

	commitIter, err := r.repo.Log(&git.LogOptions{
		From:  head.Hash(),
		Order: git.LogOrderCommitterTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log: %w", err)
	}
	defer commitIter.Close()

	var commits []Commit
	err = commitIter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, newCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	r.debug(fmt.Sprintf("Read %d commits from %s", len(commits), head.Hash().String()[:shortHashLength]))
	return commits, nil
}

func newCommit(c *object.Commit) Commit {
	hash := c.Hash.String()
	title, _, _ := strings.Cut(strings.TrimSpace(c.Message), "\n")

	return Commit{
		Hash:      hash,
		ShortHash: hash[:shortHashLength],
		Title:     strings.TrimSpace(title),
		Author:    c.Author.Name,
		When:      c.Author.When,
	}
}
