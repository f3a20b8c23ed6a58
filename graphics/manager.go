package graphics

import "termgfx/termcap"

// DefaultPreferenceOrder is the preference order used when no custom order
// is supplied: kitty, iterm2, sixel, ansi, braille, ascii.
var DefaultPreferenceOrder = []string{"kitty", "iterm2", "sixel", "ansi", "braille", "ascii"}

// Manager is a registry of backends with a preference order and a cached
// active-backend selection. The cache is invalidated by Register and
// Refresh, never by Render/Clear calls.
type Manager struct {
	backends map[string]Backend
	order    []string
	env      termcap.EnvFunc
	active   Backend
	resolved bool
}

// NewManager builds a Manager with the default preference order, resolving
// support against env.
func NewManager(env termcap.EnvFunc) *Manager {
	return &Manager{
		backends: make(map[string]Backend),
		order:    append([]string(nil), DefaultPreferenceOrder...),
		env:      env,
	}
}

// SetPreferenceOrder replaces the preference order and invalidates the
// active-backend cache.
func (m *Manager) SetPreferenceOrder(order []string) {
	m.order = append([]string(nil), order...)
	m.invalidate()
}

// Register inserts a backend into the name->backend mapping and invalidates
// the active-backend cache.
func (m *Manager) Register(b Backend) {
	m.backends[b.Name()] = b
	m.invalidate()
}

func (m *Manager) invalidate() {
	m.active = nil
	m.resolved = false
}

// Refresh clears the cache and re-resolves the active backend immediately.
func (m *Manager) Refresh() {
	m.invalidate()
	m.GetActive()
}

// GetActive iterates the preference order, returning and caching the first
// registered backend whose IsSupported reports true. Unknown names in the
// preference order (not present in the registry) are silently skipped.
// Returns nil if none are supported.
func (m *Manager) GetActive() Backend {
	if m.resolved {
		return m.active
	}
	m.resolved = true
	for _, name := range m.order {
		b, ok := m.backends[name]
		if !ok {
			continue
		}
		if b.IsSupported(m.env) {
			m.active = b
			return b
		}
	}
	m.active = nil
	return nil
}

// RenderImage delegates to the active backend's Render, or returns "" if
// there is none.
func (m *Manager) RenderImage(img Image, opts RenderOptions) string {
	b := m.GetActive()
	if b == nil {
		return ""
	}
	return b.Render(img, opts)
}

// ClearImage delegates to the active backend's Clear, or returns "" if
// there is none.
func (m *Manager) ClearImage(area *Rect) string {
	b := m.GetActive()
	if b == nil {
		return ""
	}
	return b.Clear(area)
}

// ActiveName returns the currently cached active backend's name, or "" if
// none resolved.
func (m *Manager) ActiveName() string {
	b := m.GetActive()
	if b == nil {
		return ""
	}
	return b.Name()
}
