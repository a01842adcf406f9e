package templates

const homeHTML = `
{{define "home"}}{{template "head" .}}
<h1>Rent the right car for every trip</h1>
<p>From nimble hatchbacks to executive sedans, SwiftWheels keeps a modern
fleet ready at airport and city locations. Transparent daily pricing,
insurance included on selected vehicles, and a booking flow that takes two
minutes.</p>
<p>
  <a class="btn" href="/fleet">Browse the fleet</a>
  <a class="btn secondary" href="/book">Book now</a>
</p>
<h2>Why SwiftWheels</h2>
<div class="grid">
  <div class="card"><h3>No hidden fees</h3><p>The daily rate you see on the fleet page is the rate you pay.</p></div>
  <div class="card"><h3>Flexible payment</h3><p>Pay cash at pickup or settle by bank transfer ahead of time.</p></div>
  <div class="card"><h3>Well-kept cars</h3><p>Every vehicle is serviced and cleaned between rentals.</p></div>
</div>
{{template "footer" .}}{{end}}
`

const aboutHTML = `
{{define "about"}}{{template "head" .}}
<h1>About SwiftWheels</h1>
<p>SwiftWheels started with three sedans and a counter at the airport.
Today we run a fleet across four categories, but the idea is unchanged:
renting a car should be quick, priced honestly, and handled by people who
answer the phone.</p>
<p>Questions? <a href="/contact">Get in touch</a>, a human reads every
message.</p>
{{template "footer" .}}{{end}}
`

const pricingHTML = `
{{define "pricing"}}{{template "head" .}}
<h1>Plans &amp; Pricing</h1>
<p>Every rental includes unlimited city mileage and roadside assistance.
Daily rates per category:</p>
<div class="grid">
  <div class="card"><h3>Hatchback</h3><p>From $35/day</p><p>City errands and short hops.</p></div>
  <div class="card"><h3>Sedan</h3><p>From $45/day</p><p>Comfort for the family trip.</p></div>
  <div class="card"><h3>SUV</h3><p>From $70/day</p><p>Luggage, legroom, long hauls.</p></div>
  <div class="card"><h3>Luxury</h3><p>From $120/day</p><p>Arrive like you mean it.</p></div>
</div>
<p><a class="btn" href="/fleet">See the cars</a></p>
{{template "footer" .}}{{end}}
`
