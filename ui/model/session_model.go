package model

import (
	"image"
	"path/filepath"
	"time"
)

// SessionModel records what is loaded and what has been written during this
// run. It is decoupled from the UI; presenters read Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	path       string
	sourceSize image.Point
	fileSize   int64
	loadedAt   time.Time
	saves      int
	lastSaved  string
}

// SessionInfo is a snapshot of SessionModel.
type SessionInfo struct {
	Path       string
	Name       string
	SourceSize image.Point
	FileSize   int64
	LoadedAt   time.Time
	Saves      int
	LastSaved  string
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnLoad records a newly loaded image. Save counters carry over; they count
// files written during the whole run.
func (m *SessionModel) OnLoad(path string, size image.Point, fileSize int64, now time.Time) {
	if m == nil {
		return
	}
	m.path = path
	m.sourceSize = size
	m.fileSize = fileSize
	m.loadedAt = now
}

// OnSave records a successful write.
func (m *SessionModel) OnSave(path string) {
	if m == nil {
		return
	}
	m.saves++
	m.lastSaved = path
}

// Values returns the current snapshot.
func (m *SessionModel) Values() SessionInfo {
	if m == nil {
		return SessionInfo{}
	}
	info := SessionInfo{
		Path:       m.path,
		SourceSize: m.sourceSize,
		FileSize:   m.fileSize,
		LoadedAt:   m.loadedAt,
		Saves:      m.saves,
		LastSaved:  m.lastSaved,
	}
	if m.path != "" {
		info.Name = filepath.Base(m.path)
	}
	return info
}
