// Package source loads battle profile and FAQ datasets from files or URLs.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/meur/rulesview/internal/models"
	"github.com/meur/rulesview/internal/storage"
	"go.uber.org/zap"
)

var (
	// ErrUnsupportedLocation is returned for URLs with a scheme other than
	// http, https or file
	ErrUnsupportedLocation = errors.New("unsupported data location")
	// ErrStatus is returned when a dataset URL answers with a non-200 status
	ErrStatus = errors.New("unexpected response status")
)

// Loader fetches datasets
type Loader struct {
	client *http.Client
	logger *zap.Logger
}

// NewLoader creates a Loader whose HTTP fetches time out after timeout
func NewLoader(timeout time.Duration, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Loader{
		client: &http.Client{Timeout: timeout, Transport: transport},
		logger: logger,
	}
}

// Close releases idle HTTP connections
func (l *Loader) Close() {
	l.client.CloseIdleConnections()
}

// LoadBattleProfiles reads the battle profile dataset at location
func (l *Loader) LoadBattleProfiles(ctx context.Context, location string) (*models.BattleProfileDocument, error) {
	var doc models.BattleProfileDocument
	if err := l.decode(ctx, location, &doc); err != nil {
		return nil, fmt.Errorf("failed to load battle profiles: %w", err)
	}
	l.logger.Info("Loaded battle profiles",
		zap.String("location", location),
		zap.Int("factions", len(doc.Data.Factions)),
		zap.Int("regiments_of_renown", len(doc.Data.RegimentsOfRenown)),
		zap.Int("universal_manifestations", len(doc.Data.UniversalManifestations)),
		zap.String("hash", doc.Hash),
	)
	return &doc, nil
}

// LoadFAQ reads the FAQ dataset at location
func (l *Loader) LoadFAQ(ctx context.Context, location string) (*models.FAQDocument, error) {
	var doc models.FAQDocument
	if err := l.decode(ctx, location, &doc); err != nil {
		return nil, fmt.Errorf("failed to load faq: %w", err)
	}
	l.logger.Info("Loaded FAQ",
		zap.String("location", location),
		zap.Int("sections", len(doc.Sections)),
	)
	return &doc, nil
}

// LoadCatalog loads every configured dataset, merges overlays into the
// battle profiles and returns the resulting catalog. Empty locations are
// skipped.
func (l *Loader) LoadCatalog(ctx context.Context, battleProfiles, faq, overlayDir string) (*storage.Catalog, error) {
	var (
		bp  *models.BattleProfileDocument
		fd  *models.FAQDocument
		err error
	)

	if battleProfiles != "" {
		bp, err = l.LoadBattleProfiles(ctx, battleProfiles)
		if err != nil {
			return nil, err
		}
		if overlayDir != "" {
			overlays, err := LoadOverlays(overlayDir)
			if err != nil {
				return nil, err
			}
			l.logger.Debug("Merging overlays", zap.String("dir", overlayDir), zap.Int("count", len(overlays)))
			bp = MergeOverlays(bp, overlays)
		}
	}

	if faq != "" {
		fd, err = l.LoadFAQ(ctx, faq)
		if err != nil {
			return nil, err
		}
	}

	return storage.New(bp, fd), nil
}

func (l *Loader) decode(ctx context.Context, location string, out interface{}) error {
	body, err := l.open(ctx, location)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", location, err)
	}
	return nil
}

func (l *Loader) open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return l.fetch(ctx, location)
	case strings.HasPrefix(location, "file://"):
		location = strings.TrimPrefix(location, "file://")
	case strings.Contains(location, "://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLocation, location)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", location, err)
	}
	return f, nil
}

func (l *Loader) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d", ErrStatus, url, resp.StatusCode)
	}
	return resp.Body, nil
}
