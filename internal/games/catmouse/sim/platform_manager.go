package sim

// PlatformManager owns the platform list, kept in generation order.
type PlatformManager struct {
	platforms    []*Platform
	screenWidth  float64
	visibleRange float64
	margin       float64
}

// NewPlatformManager creates a manager seeded with initial.
func NewPlatformManager(initial []*Platform, screenWidth, visibleRange, margin float64) *PlatformManager {
	platforms := make([]*Platform, len(initial))
	copy(platforms, initial)
	return &PlatformManager{
		platforms:    platforms,
		screenWidth:  screenWidth,
		visibleRange: visibleRange,
		margin:       margin,
	}
}

// VisiblePlatforms returns platforms whose screen x lies strictly inside
// (-visibleRange, screenWidth+visibleRange), in generation order.
func (m *PlatformManager) VisiblePlatforms(offset float64) []*Platform {
	visible := make([]*Platform, 0, len(m.platforms))
	for _, p := range m.platforms {
		sx := p.X() - offset
		if -m.visibleRange < sx && sx < m.screenWidth+m.visibleRange {
			visible = append(visible, p)
		}
	}
	return visible
}

// RemoveOffscreenPlatforms drops every platform with x+width < offset-margin
// and returns the dropped ones.
func (m *PlatformManager) RemoveOffscreenPlatforms(offset float64) []*Platform {
	var removed []*Platform
	kept := m.platforms[:0]
	for _, p := range m.platforms {
		if p.Right() < offset-m.margin {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(m.platforms); i++ {
		m.platforms[i] = nil
	}
	m.platforms = kept
	return removed
}

// AddPlatform appends p.
func (m *PlatformManager) AddPlatform(p *Platform) {
	m.platforms = append(m.platforms, p)
}

// LastPlatform returns the most recently added platform.
func (m *PlatformManager) LastPlatform() (*Platform, bool) {
	if len(m.platforms) == 0 {
		return nil, false
	}
	return m.platforms[len(m.platforms)-1], true
}

// Platforms returns a copy of the platform list.
func (m *PlatformManager) Platforms() []*Platform {
	out := make([]*Platform, len(m.platforms))
	copy(out, m.platforms)
	return out
}

// Count returns the number of platforms held.
func (m *PlatformManager) Count() int {
	return len(m.platforms)
}
