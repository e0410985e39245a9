package geometry

import (
	"testing"

	"github.com/1broseidon/deskclock/internal/platform"
)

func newTestController(mons ...platform.Monitor) (*Controller, *platform.Fake) {
	fake := platform.NewFake(mons...)
	return NewController(fake, DefaultChromeHeight), fake
}

func TestApplySaved_FirstRunCentersOnMonitor(t *testing.T) {
	ctl, fake := newTestController()

	ctl.ApplySaved(FirstRun())

	got := ctl.Geometry()
	if got.NeedsCentering {
		t.Fatalf("expected needs-centering flag to be cleared")
	}
	if got.X != 810 || got.Y != 490 {
		t.Fatalf("expected centered position (810, 490), got (%d, %d)", got.X, got.Y)
	}
	if fake.Pos.X != 810 || fake.Pos.Y != 490 {
		t.Fatalf("expected backend position (810, 490), got (%d, %d)", fake.Pos.X, fake.Pos.Y)
	}
	if fake.W != DefaultWidth || fake.H != DefaultHeight {
		t.Fatalf("expected backend size %dx%d, got %dx%d", DefaultWidth, DefaultHeight, fake.W, fake.H)
	}
}

func TestApplySaved_CenteringUsesFloorDivision(t *testing.T) {
	mon := platform.Monitor{Index: 0, Width: 1921, Height: 1081}
	ctl, _ := newTestController(mon)

	saved := FirstRun()
	ctl.ApplySaved(saved)

	got := ctl.Geometry()
	// (1921-300)/2 = 810 with floor, (1081-100)/2 = 490 with floor.
	if got.X != 810 || got.Y != 490 {
		t.Fatalf("expected floored center (810, 490), got (%d, %d)", got.X, got.Y)
	}
}

func TestApplySaved_CentersOnSecondMonitorOrigin(t *testing.T) {
	mons := []platform.Monitor{
		{Index: 0, Width: 1920, Height: 1080},
		{Index: 1, X: 1920, Y: 0, Width: 1280, Height: 1024},
	}
	ctl, _ := newTestController(mons...)

	saved := FirstRun()
	saved.Monitor = 1
	ctl.ApplySaved(saved)

	got := ctl.Geometry()
	wantX := 1920 + (1280-DefaultWidth)/2
	wantY := (1024 - DefaultHeight) / 2
	if got.X != wantX || got.Y != wantY {
		t.Fatalf("expected (%d, %d), got (%d, %d)", wantX, wantY, got.X, got.Y)
	}
}

func TestApplySaved_StaleMonitorIndexFallsBack(t *testing.T) {
	ctl, _ := newTestController()

	saved := FirstRun()
	saved.Monitor = 3 // unplugged since last run
	ctl.ApplySaved(saved)

	got := ctl.Geometry()
	if got.Monitor != 0 {
		t.Fatalf("expected fallback to monitor 0, got %d", got.Monitor)
	}
	if got.X != 810 || got.Y != 490 {
		t.Fatalf("expected centering on fallback monitor, got (%d, %d)", got.X, got.Y)
	}
}

func TestApplySaved_NoCenteringKeepsStoredPosition(t *testing.T) {
	ctl, fake := newTestController()

	saved := WindowGeometry{Width: 400, Height: 150, X: 42, Y: 77, Border: false}
	ctl.ApplySaved(saved)

	got := ctl.Geometry()
	if got.X != 42 || got.Y != 77 {
		t.Fatalf("expected stored position (42, 77), got (%d, %d)", got.X, got.Y)
	}
	if fake.Deco {
		t.Fatalf("expected backend to be undecorated")
	}
	if fake.W != 400 || fake.H != 150 {
		t.Fatalf("expected stored content size 400x150 applied unchanged, got %dx%d", fake.W, fake.H)
	}
}

func TestApplySaved_MatchingBorderSkipsDecorationCall(t *testing.T) {
	ctl, fake := newTestController()

	saved := WindowGeometry{Width: 300, Height: 100, Border: true}
	ctl.ApplySaved(saved)

	if fake.SetDecoCalls != 0 {
		t.Fatalf("expected no decoration call when states already match, got %d", fake.SetDecoCalls)
	}
}

func TestSetBorder_Idempotent(t *testing.T) {
	ctl, fake := newTestController()
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: true})
	sizeCalls := fake.SetSizeCalls

	if ctl.SetBorder(true) {
		t.Fatalf("expected no-op when requesting the live state")
	}
	if fake.SetSizeCalls != sizeCalls || fake.SetDecoCalls != 0 {
		t.Fatalf("expected no backend mutation on idempotent call")
	}
}

func TestSetBorder_ToggleKeepsFootprintAndReverses(t *testing.T) {
	ctl, fake := newTestController()
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: true})

	// Decorated at content height 100: footprint is 100 + chrome.
	if !ctl.SetBorder(false) {
		t.Fatalf("expected border-off to report a change")
	}
	if fake.H != 100+DefaultChromeHeight {
		t.Fatalf("expected borderless content %d, got %d", 100+DefaultChromeHeight, fake.H)
	}
	if fake.Deco {
		t.Fatalf("expected backend undecorated after toggle")
	}

	if !ctl.SetBorder(true) {
		t.Fatalf("expected border-on to report a change")
	}
	if fake.H != 100 {
		t.Fatalf("expected original content height 100 restored, got %d", fake.H)
	}
	if got := ctl.Geometry(); !got.Border {
		t.Fatalf("expected cached border flag to track the toggle")
	}
}

func TestSetBorder_ReadsLiveSizeNotCache(t *testing.T) {
	ctl, fake := newTestController()
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: false})

	// The user resized the window; the cache has not polled yet.
	fake.H = 200

	ctl.SetBorder(true)
	if fake.H != 200-DefaultChromeHeight {
		t.Fatalf("expected compensation against live height 200, got %d", fake.H)
	}
}

func TestPoll_UnchangedReportsNoChange(t *testing.T) {
	ctl, _ := newTestController()
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: true})
	if _, changed := ctl.Poll(); changed {
		t.Fatalf("expected first poll after apply to be clean")
	}
}

func TestPoll_DetectsExternalMoveAndResize(t *testing.T) {
	ctl, fake := newTestController()
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: true})

	fake.Pos = platform.Point{X: 50, Y: 60}
	fake.W, fake.H = 320, 110

	snap, changed := ctl.Poll()
	if !changed {
		t.Fatalf("expected poll to detect drift")
	}
	if snap.X != 50 || snap.Y != 60 || snap.Width != 320 || snap.Height != 110 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	if _, changed := ctl.Poll(); changed {
		t.Fatalf("expected second poll to be clean after cache overwrite")
	}
}

func TestPoll_SuspendedIgnoresDriftUntilResume(t *testing.T) {
	ctl, fake := newTestController()
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: true})

	ctl.Suspend()
	fake.Pos = platform.Point{X: 500, Y: 400}
	if _, changed := ctl.Poll(); changed {
		t.Fatalf("expected no change report while suspended")
	}

	ctl.Resume()
	snap, changed := ctl.Poll()
	if !changed {
		t.Fatalf("expected drift accumulated during suspension to surface")
	}
	if snap.X != 500 || snap.Y != 400 {
		t.Fatalf("expected drift position (500, 400), got (%d, %d)", snap.X, snap.Y)
	}
}

func TestPoll_DetectsMonitorChange(t *testing.T) {
	mons := []platform.Monitor{
		{Index: 0, Width: 1920, Height: 1080},
		{Index: 1, X: 1920, Y: 0, Width: 1920, Height: 1080},
	}
	ctl, fake := newTestController(mons...)
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: true})

	fake.Pos = platform.Point{X: 2500, Y: 300}
	snap, changed := ctl.Poll()
	if !changed {
		t.Fatalf("expected monitor hop to register as a change")
	}
	if snap.Monitor != 1 {
		t.Fatalf("expected monitor 1, got %d", snap.Monitor)
	}
}

func TestCommitPosition_UpdatesCacheOnly(t *testing.T) {
	ctl, fake := newTestController()
	ctl.ApplySaved(WindowGeometry{Width: 300, Height: 100, Border: true})
	posCalls := fake.SetPosCalls

	ctl.CommitPosition(platform.Point{X: 11, Y: 22})

	got := ctl.Geometry()
	if got.X != 11 || got.Y != 22 {
		t.Fatalf("expected cached position (11, 22), got (%d, %d)", got.X, got.Y)
	}
	if fake.SetPosCalls != posCalls {
		t.Fatalf("expected no backend position call from commit")
	}
}
