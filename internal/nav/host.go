package nav

// Host receives navigation intents. Implementations may re-render the
// navigator from inside any of these calls.
type Host interface {
	OnPageChange(scriptID string)
	CollapseSidebar()
	HideParentScrollbar(suppress bool)
}

// DeviceProbe reports whether the runtime is a compact, touch-style form
// factor. It is queried at click time, never cached.
type DeviceProbe interface {
	IsMobile() bool
}

// Props is the per-render input from the host.
type Props struct {
	Pages              []Page
	CurrentPage        string
	BasePath           string
	HasSidebarElements bool
}
