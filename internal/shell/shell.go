// Package shell renders the persistent chrome around the views: the
// sidebar with role-dependent navigation, the session box, and the
// title and content regions the views write into.
package shell

import (
	"log/slog"
	"strings"

	"github.com/target/eventshell/internal/domain/auth"
	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/ports"
)

// Entry is one sidebar navigation link.
type Entry struct {
	Label  string
	Href   nav.Target
	Active bool
}

// ControllerOptions configures a shell Controller.
type ControllerOptions struct {
	Doc    ports.Document
	Logger *slog.Logger
}

// Controller keeps the chrome in sync with the session. Mount is
// idempotent for a given identity; a changed identity re-renders the
// navigation without tearing down the page.
type Controller struct {
	doc     ports.Document
	logger  *slog.Logger
	mounted bool
	viewer  auth.Identity
	active  nav.Target
}

func NewController(opts ControllerOptions) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{doc: opts.Doc, logger: logger}
}

// Mount installs the chrome for the viewer. Mounting again with the
// same identity is a no-op; a different identity refreshes the
// navigation entries in place.
func (c *Controller) Mount(viewer auth.Identity) {
	if c.mounted {
		if c.viewer == viewer {
			return
		}
		c.viewer = viewer
		c.renderNav()
		return
	}

	var b strings.Builder
	if err := chromeTmpl.Execute(&b, viewer); err != nil {
		c.logger.Error("rendering chrome failed", "error", err)
		return
	}
	c.doc.MountChrome(b.String())
	c.mounted = true
	c.viewer = viewer
	c.active = ""
	c.renderNav()
}

// Unmount clears the page. Safe to call when nothing is mounted.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.doc.Clear()
	c.mounted = false
	c.viewer = auth.Identity{}
	c.active = ""
}

// SetActive highlights the navigation entry matching the target.
func (c *Controller) SetActive(target nav.Target) {
	if !c.mounted {
		return
	}
	c.active = target
	c.renderNav()
}

// Mounted reports whether the chrome is up.
func (c *Controller) Mounted() bool { return c.mounted }

// Entries returns the navigation links the viewer's role grants,
// with the current target highlighted.
func (c *Controller) Entries() []Entry {
	entries := []Entry{
		{Label: "Dashboard", Href: nav.TargetDashboard},
		{Label: "View events", Href: nav.TargetEvents},
	}
	if c.viewer.CanManageEvents() {
		entries = append(entries, Entry{Label: "Create event", Href: nav.TargetCreateEvent})
	}
	if c.viewer.CanManageUsers() {
		entries = append(entries, Entry{Label: "Manage Users", Href: nav.TargetUsers})
	}
	if c.viewer.IsGuest() {
		entries = append(entries, Entry{Label: "My events", Href: nav.TargetMyEvents})
	}
	for i := range entries {
		entries[i].Active = isActive(entries[i].Href, c.active)
	}
	return entries
}

// isActive matches the current target to a link. The dashboard link
// matches only exactly, so it does not light up for every protected
// screen; other links also match their sub-targets.
func isActive(href, target nav.Target) bool {
	if target == href {
		return true
	}
	if href == nav.TargetDashboard {
		return false
	}
	return target.HasPrefix(href)
}

func (c *Controller) renderNav() {
	var b strings.Builder
	if err := navTmpl.Execute(&b, c.Entries()); err != nil {
		c.logger.Error("rendering navigation failed", "error", err)
		return
	}
	if !c.doc.SetHTML(ports.RegionNav, b.String()) {
		c.logger.Warn("nav region missing, skipping render")
	}
}

var _ nav.Shell = (*Controller)(nil)
