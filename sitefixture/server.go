// Package sitefixture serves a small replica of the course website so that
// browser scenarios can run without network access.
package sitefixture

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Titles of the replica pages.
const (
	HomeTitle   = "Selenium Framework | Selenium, Cucumber, Ruby, Java et al."
	PythonTitle = "Selenium Framework | Python Course"
)

// Options tune the replica.
type Options struct {
	// NavDelay postpones inserting the main navigation into the home page
	// by the given duration, to exercise waits.
	NavDelay time.Duration
}

type page struct {
	Title      string
	Heading    string
	NavDelayMS int64
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<template id="nav-template">
<ul id="main-nav">
  <li><a href="/"><span>HOME</span></a></li>
  <li><a href="/python/"><span>PYTHON</span></a></li>
  <li><a href="/ruby/"><span>RUBY</span></a></li>
</ul>
</template>
<div id="header"></div>
<h1>{{.Heading}}</h1>
<script>
  (function() {
    var insert = function() {
      var nav = document.getElementById('nav-template').content.cloneNode(true);
      document.getElementById('header').appendChild(nav);
    };
    {{if .NavDelayMS}}setTimeout(insert, {{.NavDelayMS}});{{else}}insert();{{end}}
  })();
</script>
</body>
</html>
`))

func render(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// NewRouter returns the replica's routes: "/" with the main navigation and
// "/python/" as the PYTHON course page.
func NewRouter(opts Options) *mux.Router {
	r := mux.NewRouter()
	r.StrictSlash(true)
	r.HandleFunc("/", render(page{
		Title:      HomeTitle,
		Heading:    "Selenium Framework",
		NavDelayMS: opts.NavDelay.Milliseconds(),
	})).Methods(http.MethodGet).Name("home")
	r.HandleFunc("/python/", render(page{
		Title:   PythonTitle,
		Heading: "Python Course",
	})).Methods(http.MethodGet).Name("python")
	return r
}

// NewHandler wraps the router with response compression.
func NewHandler(opts Options) http.Handler {
	return handlers.CompressHandler(NewRouter(opts))
}

// NewServer starts the replica on a local port. Close it when done.
func NewServer(opts Options) *httptest.Server {
	return httptest.NewServer(NewHandler(opts))
}
