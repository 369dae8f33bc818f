package nav

import (
	"context"

	"github.com/target/eventshell/internal/domain/auth"
)

// View renders one screen for the given viewer. param carries the
// dynamic route parameter and is empty for static routes.
type View interface {
	Render(ctx context.Context, viewer auth.Identity, param string) error
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(ctx context.Context, viewer auth.Identity, param string) error

func (f ViewFunc) Render(ctx context.Context, viewer auth.Identity, param string) error {
	return f(ctx, viewer, param)
}

type dynamicRoute struct {
	prefix Target
	view   View
}

// Table maps targets to views. Dynamic prefix routes take priority
// over static entries, so a target that happens to match both resolves
// dynamically.
type Table struct {
	static  map[Target]View
	dynamic []dynamicRoute
}

func NewTable() *Table {
	return &Table{static: make(map[Target]View)}
}

// Handle registers a static route.
func (t *Table) Handle(target Target, view View) *Table {
	t.static[target] = view
	return t
}

// HandlePrefix registers a dynamic prefix route. The trailing segment
// of a matching target is passed to the view as its parameter.
func (t *Table) HandlePrefix(prefix Target, view View) *Table {
	t.dynamic = append(t.dynamic, dynamicRoute{prefix: prefix, view: view})
	return t
}

// Resolve finds the view for a target. Dynamic routes are checked
// first; for a dynamic match the returned param is the target's last
// path segment.
func (t *Table) Resolve(target Target) (View, string, bool) {
	for _, d := range t.dynamic {
		if target.HasPrefix(d.prefix) {
			return d.view, target.LastSegment(), true
		}
	}
	if v, ok := t.static[target]; ok {
		return v, "", true
	}
	return nil, "", false
}
