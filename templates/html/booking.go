package templates

const bookingHTML = `
{{define "booking"}}{{template "head" .}}
<h1>Book a Car</h1>
<p class="steps">Step {{.Step}} of 4 &middot; booking reference <strong>{{.Reference}}</strong></p>
{{if .Banner}}<div class="banner err">{{.Banner}}</div>{{end}}

{{if eq .Step 1}}
<form method="POST" action="/book">
  <h2>Trip details</h2>
  <label>Choose your vehicle</label>
  {{with index .Errors "Vehicle"}}<span class="field-error">Select a vehicle to continue.</span>{{end}}
  <div class="grid">
    {{range .Vehicles}}
    <label class="card">
      <input type="radio" name="vehicle" value="{{.ID}}" {{if eq .ID $.Draft.Trip.VehicleID}}checked{{end}} required>
      {{.Name}} &middot; {{.Category}} &middot; ${{printf "%.0f" .PricePerDay}}/day
    </label>
    {{end}}
  </div>

  <label for="pickup_location">Pickup location</label>
  <input id="pickup_location" name="pickup_location" value="{{.Draft.Trip.PickupLocation}}" required>
  {{with index .Errors "PickupLocation"}}<span class="field-error">Pickup location is required.</span>{{end}}

  <label for="dropoff_location">Dropoff location (leave blank for same as pickup)</label>
  <input id="dropoff_location" name="dropoff_location" value="{{.Draft.Trip.DropoffLocation}}">

  <label for="pickup_date">Pickup date</label>
  <input id="pickup_date" name="pickup_date" type="date" value="{{.Draft.Trip.PickupDate}}" min="{{.MinPickupDate}}" required>
  {{with index .Errors "PickupDate"}}<span class="field-error">Choose a pickup date from today onward.</span>{{end}}

  <label for="pickup_time">Pickup time</label>
  <input id="pickup_time" name="pickup_time" type="time" value="{{.Draft.Trip.PickupTime}}" required>
  {{with index .Errors "PickupTime"}}<span class="field-error">Pickup time is required.</span>{{end}}

  <label for="return_date">Return date</label>
  <input id="return_date" name="return_date" type="date" value="{{.Draft.Trip.ReturnDate}}" min="{{.MinReturnDate}}" required>
  {{with index .Errors "ReturnDate"}}<span class="field-error">The return date cannot precede the pickup date.</span>{{end}}

  <p><button class="btn" type="submit" name="action" value="next">Continue</button></p>
</form>
{{end}}

{{if eq .Step 2}}
<form method="POST" action="/book">
  <h2>Contact information</h2>
  <p>Booking <strong>{{.Draft.Trip.VehicleName}}</strong>, pickup at {{.Draft.Trip.PickupLocation}} on {{.Draft.Trip.PickupDate}} {{.Draft.Trip.PickupTime}}.</p>

  <label for="full_name">Full name</label>
  <input id="full_name" name="full_name" value="{{.Draft.Customer.FullName}}" required>
  {{with index .Errors "FullName"}}<span class="field-error">Your name is required.</span>{{end}}

  <label for="email">Email</label>
  <input id="email" name="email" type="email" value="{{.Draft.Customer.Email}}" required>
  {{with index .Errors "Email"}}<span class="field-error">Please enter a valid email address.</span>{{end}}

  <label for="phone">Phone</label>
  <input id="phone" name="phone" type="tel" value="{{.Draft.Customer.Phone}}" required>
  {{with index .Errors "Phone"}}<span class="field-error">A phone number is required.</span>{{end}}

  <label for="special_requests">Special requests (optional)</label>
  <textarea id="special_requests" name="special_requests" rows="3">{{.Draft.Customer.SpecialRequests}}</textarea>

  <p>
    <button class="btn secondary" type="submit" name="action" value="back">Back</button>
    <button class="btn" type="submit" name="action" value="next">Continue</button>
  </p>
</form>
{{end}}

{{if eq .Step 3}}
<form method="POST" action="/book" enctype="multipart/form-data"
      onsubmit="var b=this.querySelectorAll('button');setTimeout(function(){for(var i=0;i<b.length;i++)b[i].disabled=true;},0)">
  <h2>Payment</h2>
  <label>Payment method</label>
  <label><input type="radio" name="payment_method" value="cash" {{if eq .Draft.Payment.Method "cash"}}checked{{end}} required> Cash at pickup</label>
  <label><input type="radio" name="payment_method" value="bank-transfer" {{if eq .Draft.Payment.Method "bank-transfer"}}checked{{end}}> Bank transfer</label>
  {{with index .Errors "Method"}}<span class="field-error">Choose how you want to pay.</span>{{end}}

  <label for="transaction_id">Transaction reference (bank transfer only)</label>
  <input id="transaction_id" name="transaction_id" value="{{.Draft.Payment.TransactionID}}">
  {{with index .Errors "TransactionID"}}<span class="field-error">Enter the transfer's transaction reference.</span>{{end}}

  <label for="payment_proof">Proof of payment (bank transfer only)</label>
  {{if .Draft.Payment.Proof}}<p>Uploaded: {{.Draft.Payment.Proof.Filename}}</p>{{end}}
  <input id="payment_proof" name="payment_proof" type="file">
  {{with index .Errors "Proof"}}<span class="field-error">Attach a proof of payment for bank transfers.</span>{{end}}

  <p>
    <button class="btn secondary" type="submit" name="action" value="back">Back</button>
    <button class="btn" type="submit" name="action" value="submit">Confirm booking</button>
  </p>
</form>
{{end}}

{{if eq .Step 4}}
<div class="banner ok">Your booking request is in! Keep reference <strong>{{.Reference}}</strong> handy when contacting support.</div>
<div class="card">
  <h2>Booking summary</h2>
  <ul>
    <li>Vehicle: {{.Draft.Trip.VehicleName}}</li>
    <li>Pickup: {{.Draft.Trip.PickupLocation}}, {{.Draft.Trip.PickupDate}} at {{.Draft.Trip.PickupTime}}</li>
    <li>Dropoff: {{if .Draft.Trip.DropoffLocation}}{{.Draft.Trip.DropoffLocation}}{{else}}same as pickup{{end}}</li>
    <li>Return: {{.Draft.Trip.ReturnDate}}</li>
    <li>Name: {{.Draft.Customer.FullName}}</li>
    <li>Payment: {{.Draft.Payment.Method}}</li>
  </ul>
</div>
<p><a class="btn" href="/fleet">Back to the fleet</a></p>
{{end}}

{{template "footer" .}}{{end}}
`
