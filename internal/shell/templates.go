package shell

import "html/template"

var chromeTmpl = template.Must(template.New("chrome").Parse(`<div class="layout">
  <aside class="sidebar">
    <div class="brand">EventShell</div>
    <nav id="nav" class="nav"></nav>
    <div class="session">
      <span class="session-name">{{.Name}}</span>
      <span class="session-role">{{.Role}}</span>
      <button id="logout" class="logout" data-action="logout">Log out</button>
    </div>
  </aside>
  <main class="workspace">
    <header id="view-title" class="view-title"></header>
    <section id="app-content" class="app-content"></section>
  </main>
</div>`))

var navTmpl = template.Must(template.New("nav").Parse(
	`{{range .}}<a href="{{.Href}}" class="nav-link{{if .Active}} active{{end}}">{{.Label}}</a>
{{end}}`))
