// Package memdoc holds page markup in memory. It backs the dev harness
// and tests, standing in for a real browser document.
package memdoc

import (
	"sync"

	"github.com/target/eventshell/internal/ports"
)

// Document is an in-memory ports.Document. Safe for concurrent use.
type Document struct {
	mu      sync.Mutex
	app     string
	regions map[ports.Region]string
}

func New() *Document {
	return &Document{}
}

// MountChrome installs the chrome markup and opens the inner regions.
func (d *Document) MountChrome(markup string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.app = markup
	d.regions = map[ports.Region]string{
		ports.RegionNav:     "",
		ports.RegionTitle:   "",
		ports.RegionContent: "",
	}
}

// SetHTML replaces a region's markup. Writing the app region replaces
// the whole page and closes the chrome regions. Writing a closed
// region reports false without failing.
func (d *Document) SetHTML(region ports.Region, markup string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if region == ports.RegionApp {
		d.app = markup
		d.regions = nil
		return true
	}
	if d.regions == nil {
		return false
	}
	if _, ok := d.regions[region]; !ok {
		return false
	}
	d.regions[region] = markup
	return true
}

// Clear empties the page and closes all chrome regions.
func (d *Document) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.app = ""
	d.regions = nil
}

// HTML returns a region's current markup. The app region is always
// present; chrome regions exist only while the chrome is mounted.
func (d *Document) HTML(region ports.Region) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if region == ports.RegionApp {
		return d.app, true
	}
	if d.regions == nil {
		return "", false
	}
	markup, ok := d.regions[region]
	return markup, ok
}

// ChromeMounted reports whether the chrome regions are open.
func (d *Document) ChromeMounted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regions != nil
}

var _ ports.Document = (*Document)(nil)
