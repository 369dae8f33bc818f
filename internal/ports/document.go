package ports

// Region identifies a mutable area of the page the shell renders into.
type Region string

const (
	// RegionApp is the whole page body. Replacing it drops the chrome
	// and its inner regions.
	RegionApp Region = "app"
	// RegionNav is the sidebar navigation inside the chrome.
	RegionNav Region = "nav"
	// RegionTitle is the view title header inside the chrome.
	RegionTitle Region = "view-title"
	// RegionContent is the main content area inside the chrome.
	RegionContent Region = "app-content"
)

// Document abstracts the page being driven. The chrome's inner regions
// (nav, title, content) exist only between MountChrome and the next
// full-page write. SetHTML on a missing region is a tolerated no-op:
// it reports false and must never fail, since a logout can tear the
// chrome down while a render is still in flight.
type Document interface {
	// MountChrome installs the authenticated chrome markup and opens
	// the nav, title, and content regions.
	MountChrome(markup string)
	// SetHTML replaces a region's markup, reporting whether the region
	// was present.
	SetHTML(region Region, markup string) bool
	// Clear empties the page and closes all chrome regions.
	Clear()
}
