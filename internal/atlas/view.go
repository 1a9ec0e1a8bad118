package atlas

// CenterMode selects the geographic point rotated to the map center.
type CenterMode int

const (
	CenterOrigin CenterMode = iota
	CenterHome
	CenterMeridian
)

func (m CenterMode) String() string {
	switch m {
	case CenterHome:
		return "home country"
	case CenterMeridian:
		return "fixed meridian"
	default:
		return "origin"
	}
}

// ViewMode selects between the whole world and the home close-up.
type ViewMode int

const (
	ViewWorld ViewMode = iota
	ViewHome
)

func (m ViewMode) String() string {
	if m == ViewHome {
		return "home country"
	}
	return "world"
}

// ViewState is the session view configuration. It holds ids and enums only;
// live projection and surface handles stay inside factory and renderer
// calls. Transition methods keep the state invariants and report whether a
// rebuild is needed.
type ViewState struct {
	ProjectionID string
	Center       CenterMode
	Mode         ViewMode
	Graticule    bool
}

// DefaultView is the startup state: default projection, origin center,
// world view.
func DefaultView() ViewState {
	return ViewState{ProjectionID: DefaultProjectionID}
}

// SelectProjection switches the active projection. An unknown id leaves the
// state unchanged and returns ErrUnknownProjection.
func (v *ViewState) SelectProjection(id string) (bool, error) {
	if _, err := Find(id); err != nil {
		return false, err
	}
	if v.ProjectionID == id {
		return false, nil
	}
	v.ProjectionID = id
	return true, nil
}

// SetCenterMode changes the centering point. While the home close-up is
// active only the home preset is allowed; anything else is a no-op.
func (v *ViewState) SetCenterMode(m CenterMode) bool {
	if v.Mode == ViewHome && m != CenterHome {
		return false
	}
	if v.Center == m {
		return false
	}
	v.Center = m
	return true
}

// CycleCenterMode advances origin -> home country -> fixed meridian.
func (v *ViewState) CycleCenterMode() bool {
	next := (v.Center + 1) % 3
	return v.SetCenterMode(next)
}

// SetMode switches between world and home close-up. Entering the close-up
// forces the center to the home preset in the same transition; leaving it
// keeps whatever center mode is set rather than resetting to origin.
func (v *ViewState) SetMode(m ViewMode) bool {
	if v.Mode == m {
		return false
	}
	v.Mode = m
	if m == ViewHome {
		v.Center = CenterHome
	}
	return true
}

// ToggleMode flips between the two view modes.
func (v *ViewState) ToggleMode() bool {
	if v.Mode == ViewWorld {
		return v.SetMode(ViewHome)
	}
	return v.SetMode(ViewWorld)
}

// ToggleGraticule flips the guide-line layer. Always a rebuild.
func (v *ViewState) ToggleGraticule() bool {
	v.Graticule = !v.Graticule
	return true
}
