package templates

const errorHTML = `
{{define "error"}}{{template "head" .}}
<h1>Something went wrong</h1>
<div class="banner err">{{.Message}}</div>
<p>This is usually temporary. Nothing you entered has been lost.</p>
<p><a class="btn" href="{{.RetryURL}}">Try again</a> <a class="btn secondary" href="/">Back to home</a></p>
{{template "footer" .}}{{end}}
`

const notFoundHTML = `
{{define "notfound"}}{{template "head" .}}
{{if .Vehicle}}
<h1>Vehicle not found</h1>
<p>That car is not in our fleet. It may have been retired, or the link is
out of date.</p>
<p><a class="btn" href="/fleet">Browse the current fleet</a></p>
{{else}}
<h1>Page not found</h1>
<p>The page you are looking for does not exist.</p>
<p><a class="btn" href="/">Back to home</a></p>
{{end}}
{{template "footer" .}}{{end}}
`
