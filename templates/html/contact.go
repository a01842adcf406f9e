package templates

const contactHTML = `
{{define "contact"}}{{template "head" .}}
<h1>Contact Us</h1>
{{if .Success}}<div class="banner ok">Thanks, your message is on its way. We reply within one business day.</div>{{end}}
{{if .Failure}}<div class="banner err">We could not send your message. Please check your details and try again.</div>{{end}}
<form method="POST" action="/contact">
  <label for="name">Name</label>
  <input id="name" name="name" value="{{.Form.Name}}" required>
  {{with index .Errors "Name"}}<span class="field-error">Please enter your name.</span>{{end}}

  <label for="email">Email</label>
  <input id="email" name="email" type="email" value="{{.Form.Email}}" required>
  {{with index .Errors "Email"}}<span class="field-error">Please enter a valid email address.</span>{{end}}

  <label for="phone">Phone (optional)</label>
  <input id="phone" name="phone" type="tel" value="{{.Form.Phone}}">

  <label for="subject">Subject</label>
  <select id="subject" name="subject" required>
    {{range .Subjects}}<option value="{{.}}" {{if eq . $.Form.Subject}}selected{{end}}>{{.}}</option>{{end}}
  </select>
  {{with index .Errors "Subject"}}<span class="field-error">Please pick a subject.</span>{{end}}

  <label for="message">Message</label>
  <textarea id="message" name="message" rows="6" required>{{.Form.Message}}</textarea>
  {{with index .Errors "Message"}}<span class="field-error">Please enter a message.</span>{{end}}

  <p><button class="btn" type="submit">Send message</button></p>
</form>
{{template "footer" .}}{{end}}
`
