package sim

// Viewport follows the size of a host surface and re-initialises a scene
// when it changes. A rejected size is remembered so it is not retried every
// frame; the scene keeps its last accepted frame until a usable size
// arrives.
type Viewport struct {
	seenW, seenH int
}

// Sync reports whether (w, h) differs from the last size seen and, when it
// does, returns the result of re-initialising s to it.
func (v *Viewport) Sync(s *Scene, w, h int) (changed bool, err error) {
	if w == v.seenW && h == v.seenH {
		return false, nil
	}
	v.seenW, v.seenH = w, h
	return true, s.Initialize(float64(w), float64(h))
}

// Size returns the pixel size of the scene's accepted frame, which is what
// a host should render at. It is zero before the first accepted size.
func (v *Viewport) Size(s *Scene) (int, int) {
	if !s.Initialized() {
		return 0, 0
	}
	return int(s.Frame.W), int(s.Frame.H)
}
