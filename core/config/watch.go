// File: watch.go
// Title: Configuration File Watching
// Description: Implements polling-based monitoring of the configuration
//              file so long-running hosts pick up edits without a restart.
//              A reload replaces the stored data atomically and notifies
//              registered change handlers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation of polling watcher

package config

import (
	"os"
	"time"
)

// watchInterval is the polling period for file modification checks
const watchInterval = 1 * time.Second

// OnChange registers a handler invoked after every successful reload
func (s *Store) OnChange(handler ChangeHandler) {
	if handler == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, handler)
}

// startWatching polls the file's modification time and reloads on change.
// Runs in its own goroutine until StopWatching is called.
func (s *Store) startWatching() {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		watching := s.watching
		path := s.filePath
		lastModified := s.lastModified
		s.mu.RUnlock()

		if !watching {
			return
		}

		fileInfo, err := os.Stat(path)
		if err != nil {
			// File deleted or moved; keep the last good configuration.
			continue
		}

		if fileInfo.ModTime().After(lastModified) {
			// Reload errors keep the previous data and the watcher alive.
			s.reload()
		}
	}
}

// reload re-reads and re-parses the file, swaps the data under the write
// lock and notifies change handlers with before/after snapshots
func (s *Store) reload() error {
	s.mu.RLock()
	path := s.filePath
	format := s.format
	defaults := s.defaults
	s.mu.RUnlock()

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	newData, err := parseContent(content, format)
	if err != nil {
		return err
	}
	if defaults != nil {
		newData = deepMerge(deepMerge(make(map[string]any), defaults), newData)
	}

	s.mu.Lock()
	oldSnapshot := &Store{
		data:      deepMerge(make(map[string]any), s.data),
		format:    s.format,
		envPrefix: s.envPrefix,
	}

	s.data = newData
	if fileInfo, statErr := os.Stat(path); statErr == nil {
		s.lastModified = fileInfo.ModTime()
	}

	newSnapshot := &Store{
		data:      deepMerge(make(map[string]any), s.data),
		format:    s.format,
		envPrefix: s.envPrefix,
	}
	handlers := make([]ChangeHandler, len(s.watchers))
	copy(handlers, s.watchers)
	s.mu.Unlock()

	for _, handler := range handlers {
		go handler(oldSnapshot, newSnapshot)
	}
	return nil
}

// StopWatching stops file monitoring
func (s *Store) StopWatching() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watching = false
}

// IsWatching returns whether file monitoring is active
func (s *Store) IsWatching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watching
}
