// Package views renders the application screens into the Document
// port and exposes each screen's actions. Views never navigate
// themselves; they ask the Navigator.
package views

import (
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/target/eventshell/internal/nav"
	"github.com/target/eventshell/internal/ports"
	"github.com/target/eventshell/internal/service"
)

// Deps carries everything the view set needs.
type Deps struct {
	Doc    ports.Document
	Nav    nav.Navigator
	Auth   *service.AuthService
	Events *service.EventService
	Users  *service.UserService
	Logger *slog.Logger
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Set is the full collection of screens, wired and ready to mount on
// a route table.
type Set struct {
	Login     *LoginView
	Register  *RegisterView
	Dashboard *DashboardView
	Events    *EventsView
	EventForm *EventFormView
	MyEvents  *MyEventsView
	Users     *UsersView
	UserForm  *UserFormView
	NotFound  *StatusView
}

func NewSet(d Deps) *Set {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	b := base{doc: d.Doc, nav: d.Nav, logger: d.Logger, now: d.Now}
	return &Set{
		Login:     &LoginView{base: b, auth: d.Auth},
		Register:  &RegisterView{base: b, auth: d.Auth},
		Dashboard: &DashboardView{base: b, events: d.Events},
		Events:    &EventsView{base: b, events: d.Events},
		EventForm: &EventFormView{base: b, events: d.Events, users: d.Users},
		MyEvents:  &MyEventsView{base: b, events: d.Events},
		Users:     &UsersView{base: b, users: d.Users},
		UserForm:  &UserFormView{base: b, users: d.Users},
		NotFound:  &StatusView{base: b, title: "Page not found", message: "The page you are looking for does not exist."},
	}
}

// Mount registers every screen on the route table.
func (s *Set) Mount(table *nav.Table) {
	table.
		Handle(nav.TargetLogin, s.Login).
		Handle(nav.TargetRegister, s.Register).
		Handle(nav.TargetDashboard, s.Dashboard).
		Handle(nav.TargetEvents, s.Events).
		Handle(nav.TargetCreateEvent, s.EventForm).
		Handle(nav.TargetUsers, s.Users).
		Handle(nav.TargetCreateUser, s.UserForm).
		Handle(nav.TargetMyEvents, s.MyEvents).
		Handle(nav.TargetNotFound, s.NotFound).
		HandlePrefix(nav.PrefixEditEvent, s.EventForm).
		HandlePrefix(nav.PrefixEditUser, s.UserForm)
}

// base bundles the rendering plumbing every view shares.
type base struct {
	doc    ports.Document
	nav    nav.Navigator
	logger *slog.Logger
	now    func() time.Time
}

func execute(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// fullPage replaces the entire page, used by the public screens.
func (b base) fullPage(tmpl *template.Template, data any) error {
	markup, err := execute(tmpl, data)
	if err != nil {
		return err
	}
	b.doc.SetHTML(ports.RegionApp, markup)
	return nil
}

// screen writes a title and body into the chrome regions. Missing
// regions are tolerated: a logout can close them mid-render.
func (b base) screen(title string, tmpl *template.Template, data any) error {
	markup, err := execute(tmpl, data)
	if err != nil {
		return err
	}
	if !b.doc.SetHTML(ports.RegionTitle, "<h1>"+template.HTMLEscapeString(title)+"</h1>") {
		b.logger.Debug("title region missing", "title", title)
	}
	if !b.doc.SetHTML(ports.RegionContent, markup) {
		b.logger.Debug("content region missing", "title", title)
	}
	return nil
}
