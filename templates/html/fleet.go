package templates

const fleetHTML = `
{{define "fleet"}}{{template "head" .}}
<h1>Our Fleet</h1>
<form method="GET" action="/fleet">
  <input type="search" name="q" value="{{.Query}}" placeholder="Search by name or description">
  {{if and .Category (ne .Category "All")}}<input type="hidden" name="category" value="{{.Category}}">{{end}}
  <button class="btn" type="submit">Search</button>
</form>
<p>
  <a class="pill {{if or (eq .Category "All") (eq .Category "")}}active{{end}}" href="/fleet{{if .Query}}?q={{.Query}}{{end}}">All</a>
  {{range .Categories}}
  <a class="pill {{if eq (printf "%s" .) $.Category}}active{{end}}" href="/fleet?category={{.}}{{if $.Query}}&q={{$.Query}}{{end}}">{{.}}</a>
  {{end}}
</p>
<p>Showing {{len .Vehicles}} vehicles</p>
{{if .Vehicles}}
<div class="grid">
  {{range .Vehicles}}
  <div class="card">
    {{if .Image}}<img src="{{.Image}}" alt="{{.Name}}" style="width:100%">{{end}}
    <h3><a href="/fleet/{{.Slug}}">{{.Name}}</a></h3>
    <p>{{.Category}} &middot; ${{printf "%.0f" .PricePerDay}}/day &middot; {{.Seats}} seats</p>
    <p>{{.Transmission}} &middot; {{.FuelType}} &middot; rated {{printf "%.1f" .Rating}}/5</p>
    <p><a class="btn" href="/book/{{.Slug}}">Book this car</a></p>
  </div>
  {{end}}
</div>
{{else}}
<div class="card">
  <p>No vehicles match your search.</p>
  <p>
    <a class="btn secondary" href="/fleet{{if .Query}}?q={{.Query}}{{end}}">Show all categories</a>
    <a class="btn secondary" href="/fleet{{if and .Category (ne .Category "All")}}?category={{.Category}}{{end}}">Clear search</a>
  </p>
</div>
{{end}}
{{template "footer" .}}{{end}}
`

const vehicleHTML = `
{{define "vehicle"}}{{template "head" .}}
{{with .Vehicle}}
<p><a href="/fleet">&larr; Back to fleet</a></p>
<h1>{{.Name}}</h1>
{{if .Image}}<img src="{{.Image}}" alt="{{.Name}}" style="max-width:480px;width:100%">{{end}}
<p>{{.Description}}</p>
<div class="card">
  <p><strong>${{printf "%.0f" .PricePerDay}}</strong> per day &middot; {{.Category}}</p>
  <ul>
    <li>{{.Seats}} seats, {{.LuggageCapacity}} bags</li>
    <li>{{.Transmission}} transmission, {{.FuelType}}</li>
    <li>{{if .AirConditioning}}Air conditioning{{else}}No air conditioning{{end}}</li>
    <li>{{if .InsuranceIncluded}}Insurance included{{else}}Insurance not included{{end}}</li>
    <li>Rated {{printf "%.1f" .Rating}}/5 by our customers</li>
  </ul>
  <a class="btn" href="/book/{{.Slug}}">Book this car</a>
</div>
{{end}}
{{template "footer" .}}{{end}}
`
