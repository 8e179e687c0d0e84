package download

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/minecraft1024a/mofox-market/internal/git"
	"go.uber.org/zap"
)

// Downloader fetches plugin sources into a local directory
type Downloader struct {
	Git    git.Client
	Logger *zap.Logger
}

// New creates a downloader using the git executable
func New(logger *zap.Logger) *Downloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Downloader{
		Git:    git.NewClient(),
		Logger: logger,
	}
}

// Result describes a finished download
type Result struct {
	URL  string // resolved repository link
	Path string // directory the plugin was cloned into
}

// Download clones the plugin's repository under destDir
func (d *Downloader) Download(ctx context.Context, p catalog.Plugin, destDir string) (*Result, error) {
	url, err := catalog.RepositoryLink(p.RepositoryURL)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory: %w", err)
	}

	dest, err := ResolveUniquePath(destDir, FolderName(p))
	if err != nil {
		return nil, err
	}

	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("cloning plugin", zap.String("url", url), zap.String("dest", dest))

	if err := d.Git.Clone(ctx, url, dest); err != nil {
		return nil, fmt.Errorf("failed to clone plugin repository: %w", err)
	}

	return &Result{URL: url, Path: dest}, nil
}

// FolderName returns the directory name used for a plugin
func FolderName(p catalog.Plugin) string {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = p.ID
	}
	if name == "" {
		name = "plugin"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '-'
		}
		return r
	}, name)
}

// GenerateRandomSuffix generates a random hex suffix of the specified length.
// Uses crypto/rand for secure random generation.
func GenerateRandomSuffix(length int) (string, error) {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}

// ResolveUniquePath returns a destination path under dir that does not exist
// yet. If dir/name is taken, a -{8-char-random} suffix is appended.
func ResolveUniquePath(dir, name string) (string, error) {
	basePath := filepath.Join(dir, name)

	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		return basePath, nil
	}

	suffix, err := GenerateRandomSuffix(8)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name+"-"+suffix), nil
}
