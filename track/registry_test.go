package track

import (
	"testing"

	"gocv.io/x/gocv"
)

// stubCapability is a scripted Capability used in place of a real OpenCV
// tracker.  It returns its seeded box shifted by a fixed delta each update
// and can be told to report failure
type stubCapability struct {
	box    Rect
	dx, dy int
	fail   bool
	seeded bool
}

func (s *stubCapability) Seed(frame gocv.Mat, box Rect) error {
	s.box = box
	s.seeded = true
	return nil
}

func (s *stubCapability) Update(frame gocv.Mat) (Rect, bool) {

	if s.fail {
		// degraded tracker returns a zero box
		return Rect{}, false
	}

	s.box = NewRect(s.box.X+s.dx, s.box.Y+s.dy, s.box.W, s.box.H)

	return s.box, true
}

func (s *stubCapability) Close() error {
	return nil
}

// stubFactory returns a factory handing out the given capabilities in order
func stubFactory(caps []*stubCapability) CapabilityFactory {
	next := 0
	return func() Capability {
		c := caps[next]
		next++
		return c
	}
}

func TestRegistryIDOrder(t *testing.T) {

	caps := []*stubCapability{{}, {}, {}}
	reg := NewRegistry(stubFactory(caps))
	frame := gocv.Mat{}

	boxes := []Rect{
		NewRect(0, 0, 10, 10),
		NewRect(20, 20, 10, 10),
		NewRect(40, 40, 10, 10),
	}

	for i, box := range boxes {
		tr, err := reg.Add(frame, box)

		if err != nil {
			t.Fatalf("unexpected error adding track %d: %v", i, err)
		}

		if tr.ID() != i {
			t.Errorf("expected id %d in call order, got %d", i, tr.ID())
		}
	}

	if reg.Len() != 3 {
		t.Fatalf("expected 3 tracks, got %d", reg.Len())
	}

	for i, tr := range reg.Tracks() {
		if tr.ID() != i {
			t.Errorf("track at position %d has id %d", i, tr.ID())
		}

		if !caps[i].seeded {
			t.Errorf("capability %d was never seeded", i)
		}
	}
}

func TestRegistryRejectsEmptyBox(t *testing.T) {

	reg := NewRegistry(stubFactory([]*stubCapability{{}}))

	_, err := reg.Add(gocv.Mat{}, NewRect(10, 10, 0, 5))

	if err == nil {
		t.Fatal("expected error adding zero area box")
	}

	if reg.Len() != 0 {
		t.Errorf("failed add must not register a track, got %d", reg.Len())
	}
}

func TestUpdateAllVacuousSuccess(t *testing.T) {

	reg := NewRegistry(stubFactory(nil))

	ok, boxes := reg.UpdateAll(gocv.Mat{})

	if !ok {
		t.Error("zero tracks must report vacuous success")
	}

	if len(boxes) != 0 {
		t.Errorf("expected empty box sequence, got %d entries", len(boxes))
	}
}

func TestUpdateAllFailureIsolation(t *testing.T) {

	caps := []*stubCapability{
		{dx: 1, dy: 1},
		{fail: true},
		{dx: 2, dy: 0},
	}
	reg := NewRegistry(stubFactory(caps))
	frame := gocv.Mat{}

	initial := []Rect{
		NewRect(0, 0, 10, 10),
		NewRect(100, 100, 10, 10),
		NewRect(200, 200, 10, 10),
	}

	for _, box := range initial {
		if _, err := reg.Add(frame, box); err != nil {
			t.Fatalf("unexpected add error: %v", err)
		}
	}

	ok, boxes := reg.UpdateAll(frame)

	if ok {
		t.Error("one failed tracker must flip the combined success flag")
	}

	if len(boxes) != 3 {
		t.Fatalf("all boxes must still be returned, expected 3, got %d", len(boxes))
	}

	// order preserved regardless of individual failure
	if boxes[0] != NewRect(1, 1, 10, 10) {
		t.Errorf("track 0 box wrong: %v", boxes[0])
	}

	// failed tracker keeps the stale box from its last good update
	if boxes[1] != initial[1] {
		t.Errorf("track 1 expected stale box %v, got %v", initial[1], boxes[1])
	}

	if boxes[2] != NewRect(202, 200, 10, 10) {
		t.Errorf("track 2 box wrong: %v", boxes[2])
	}
}

func TestUpdateAllOverwritesBoxes(t *testing.T) {

	caps := []*stubCapability{{dx: 5, dy: -5}}
	reg := NewRegistry(stubFactory(caps))
	frame := gocv.Mat{}

	tr, err := reg.Add(frame, NewRect(50, 50, 20, 20))

	if err != nil {
		t.Fatalf("unexpected add error: %v", err)
	}

	reg.UpdateAll(frame)
	reg.UpdateAll(frame)

	want := NewRect(60, 40, 20, 20)

	if tr.Box() != want {
		t.Errorf("expected box %v after two updates, got %v", want, tr.Box())
	}
}

func TestAlgorithmLookup(t *testing.T) {

	if _, err := NewCapabilityFactory("does-not-exist"); err == nil {
		t.Error("expected error for unknown algorithm name")
	}

	names := Algorithms()

	if len(names) == 0 {
		t.Fatal("expected at least one registered algorithm")
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("algorithm names not sorted: %v", names)
		}
	}
}
