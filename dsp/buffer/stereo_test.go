package buffer

import "testing"

func TestNewStereo(t *testing.T) {
	s := NewStereo(16)
	if s.Frames() != 16 {
		t.Fatalf("Frames()=%d, want 16", s.Frames())
	}
	if len(s.Left()) != 16 || len(s.Right()) != 16 {
		t.Fatalf("channel lengths %d/%d, want 16/16", len(s.Left()), len(s.Right()))
	}
}

func TestNewStereoNegative(t *testing.T) {
	s := NewStereo(-3)
	if s.Frames() != 0 {
		t.Fatalf("Frames()=%d, want 0", s.Frames())
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	s := NewStereo(64)
	left := s.Left()
	s.Resize(32)
	if s.Frames() != 32 {
		t.Fatalf("Frames()=%d, want 32", s.Frames())
	}
	if &s.Left()[0] != &left[0] {
		t.Fatal("expected shrinking resize to reuse backing array")
	}
}

func TestZero(t *testing.T) {
	s := NewStereo(4)
	s.Left()[2] = 1
	s.Right()[3] = -1
	s.Zero()
	for i := 0; i < s.Frames(); i++ {
		if s.Left()[i] != 0 || s.Right()[i] != 0 {
			t.Fatalf("frame %d not zeroed", i)
		}
	}
}

func TestCopyIsDeep(t *testing.T) {
	s := NewStereo(4)
	s.Left()[0] = 0.5
	c := s.Copy()
	c.Left()[0] = -0.5
	if s.Left()[0] != 0.5 {
		t.Fatal("copy mutated the original")
	}
}

func TestPoolRoundTrip(t *testing.T) {
	p := NewPool()
	s := p.Get(128)
	if s.Frames() != 128 {
		t.Fatalf("Frames()=%d, want 128", s.Frames())
	}
	s.Left()[0] = 1
	p.Put(s)

	s2 := p.Get(128)
	for i := 0; i < s2.Frames(); i++ {
		if s2.Left()[i] != 0 {
			t.Fatalf("pooled buffer not zeroed at %d", i)
		}
	}
	p.Put(s2)
	p.Put(nil) // must not panic
}
