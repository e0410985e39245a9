package platform

// Fake is an in-memory Backend for tests: a window that exists only as
// a set of fields. Newly created Fakes are decorated, matching real
// windows. Call counters let tests assert that an operation touched
// (or did not touch) the backend.
type Fake struct {
	W, H      int
	Pos       Point
	Mons      []Monitor
	Deco      bool
	OnTop     bool
	Resizable bool
	Ptr       Pointer
	CloseReq  bool

	SetSizeCalls int
	SetPosCalls  int
	SetDecoCalls int
}

var _ Backend = (*Fake)(nil)

// NewFake returns a decorated fake window on the given monitors. With
// no monitors supplied it synthesizes a single 1920x1080 display at the
// origin.
func NewFake(mons ...Monitor) *Fake {
	if len(mons) == 0 {
		mons = []Monitor{{Index: 0, Name: "fake-0", Width: 1920, Height: 1080}}
	}
	return &Fake{Mons: mons, Deco: true}
}

func (f *Fake) ContentSize() (int, int) { return f.W, f.H }

func (f *Fake) SetContentSize(w, h int) {
	f.W, f.H = w, h
	f.SetSizeCalls++
}

func (f *Fake) Position() Point { return f.Pos }

func (f *Fake) SetPosition(p Point) {
	f.Pos = p
	f.SetPosCalls++
}

func (f *Fake) CurrentMonitor() int {
	cx := f.Pos.X + f.W/2
	cy := f.Pos.Y + f.H/2
	for _, m := range f.Mons {
		if cx >= m.X && cx < m.X+m.Width && cy >= m.Y && cy < m.Y+m.Height {
			return m.Index
		}
	}
	return 0
}

func (f *Fake) Monitors() []Monitor { return f.Mons }

func (f *Fake) Decorated() bool { return f.Deco }

func (f *Fake) SetDecorated(on bool) {
	f.Deco = on
	f.SetDecoCalls++
}

func (f *Fake) SetAlwaysOnTop(on bool) { f.OnTop = on }

func (f *Fake) SetResizable(on bool) { f.Resizable = on }

func (f *Fake) Pointer() Pointer { return f.Ptr }

func (f *Fake) PumpEvents() bool { return f.CloseReq }
