package model

import (
	"image"
	"testing"
	"time"
)

func TestSessionModel_BasicLifecycle(t *testing.T) {
	m := NewSessionModel()
	if m.Values().Name != "" {
		t.Fatalf("fresh model should not be loaded")
	}
	base := time.Unix(0, 0)

	m.OnLoad("/photos/a.jpg", image.Pt(2000, 3000), 1500, base)
	v := m.Values()
	if v.Name != "a.jpg" || v.SourceSize != image.Pt(2000, 3000) || v.FileSize != 1500 {
		t.Fatalf("unexpected values after load: %+v", v)
	}
	if v.Saves != 0 || v.LastSaved != "" {
		t.Fatalf("no saves expected yet: %+v", v)
	}

	m.OnSave("/out/cropped_image.png")
	m.OnSave("/out/cropped_image.png")
	if v = m.Values(); v.Saves != 2 || v.LastSaved != "/out/cropped_image.png" {
		t.Fatalf("expected 2 saves, got %+v", v)
	}

	// Loading another image keeps the run's save count.
	m.OnLoad("/photos/b.png", image.Pt(10, 10), 99, base.Add(time.Minute))
	v = m.Values()
	if v.Name != "b.png" || v.Saves != 2 || !v.LoadedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected values after reload: %+v", v)
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnLoad("x", image.Point{}, 0, time.Now())
	m.OnSave("y")
	if m.Values() != (SessionInfo{}) {
		t.Fatalf("nil model should report zero values")
	}
}

func TestActionModel_SaveEnabled(t *testing.T) {
	var m ActionModel
	if m.SaveEnabled() {
		t.Fatalf("zero value must be disabled")
	}
	if !m.SetSaveEnabled(true) || !m.SaveEnabled() {
		t.Fatalf("enable should change state")
	}
	if m.SetSaveEnabled(true) {
		t.Fatalf("second enable should report no change")
	}
}
