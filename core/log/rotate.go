// File: rotate.go
// Title: Size-Based Log Rotation
// Description: Implements the rotation policy for the file sink: numbered
//              backups path.1 .. path.N shifted upward by age, with the
//              oldest discarded. Rotation always runs under the sink lock,
//              serialized against every concurrent writer.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with rename-shift rotation

package log

import (
	"os"
	"strconv"
)

// ShouldRotate reports whether appending pendingBytes to a file of
// currentBytes would exceed maxBytes. The check runs before the write
// that would cross the limit, not after. A maxBytes of zero disables
// rotation entirely.
func ShouldRotate(currentBytes, pendingBytes, maxBytes int64) bool {
	return maxBytes > 0 && currentBytes+pendingBytes > maxBytes
}

// BackupName returns the path of the numbered backup file. Index 1 is the
// most recent backup, maxBackups the oldest.
func BackupName(basePath string, index int) string {
	return basePath + "." + strconv.Itoa(index)
}

// shiftBackups ages the backup chain by one step: the oldest backup is
// removed, every other backup moves up one index, and the active file
// becomes backup 1. The caller creates the fresh active file afterwards.
func shiftBackups(basePath string, maxBackups int) error {
	oldest := BackupName(basePath, maxBackups)
	if _, err := os.Stat(oldest); err == nil {
		if err := os.Remove(oldest); err != nil {
			return err
		}
	}
	for i := maxBackups - 1; i >= 1; i-- {
		src := BackupName(basePath, i)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := os.Rename(src, BackupName(basePath, i+1)); err != nil {
			return err
		}
	}
	return os.Rename(basePath, BackupName(basePath, 1))
}

// rotateLocked replaces the full active file with a fresh empty one,
// keeping at most maxBackups numbered predecessors. A filesystem failure
// is reported once on the warning channel and the sink continues against
// whatever handle remains valid; losing a rotation is preferable to losing
// subsequent log lines. Must hold s.mu.
func (s *State) rotateLocked() {
	if s.file != nil {
		s.file.Sync()
		s.file.Close()
		s.file = nil
	}

	if s.maxBackups <= 0 {
		// Degenerate policy: no history, truncate in place.
		f, err := os.OpenFile(s.filePath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			s.warnLocked("log rotation failed: " + err.Error())
			s.reopenLocked()
			return
		}
		s.file = f
		s.currentBytes = 0
		s.writeFailed = false
		return
	}

	if err := shiftBackups(s.filePath, s.maxBackups); err != nil {
		s.warnLocked("log rotation failed: " + err.Error() + ", continuing with current file")
		s.reopenLocked()
		return
	}

	f, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.warnLocked("cannot create log file after rotation: " + err.Error())
		return
	}
	s.file = f
	s.currentBytes = 0
	s.writeFailed = false
}

// reopenLocked reattaches the active file after a failed rotation so that
// writes continue unrotated. Must hold s.mu.
func (s *State) reopenLocked() {
	f, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		s.warnLocked("cannot reopen log file: " + err.Error())
		return
	}
	if info, statErr := f.Stat(); statErr == nil {
		s.currentBytes = info.Size()
	}
	s.file = f
}
