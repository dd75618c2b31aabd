package email

import (
	"html/template"
	"strings"
)

var templateFuncs = template.FuncMap{
	"nl2br": nl2br,
}

var (
	notificationTmpl = template.Must(template.New("notification").Funcs(templateFuncs).Parse(notificationTemplate))
	confirmationTmpl = template.Must(template.New("confirmation").Funcs(templateFuncs).Parse(confirmationTemplate))
)

// nl2br escapes s and keeps its line breaks as <br> elements
func nl2br(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>\n"))
}

// notificationTemplate is the internal alert sent to the agency inbox
const notificationTemplate = `<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Neue Kontaktanfrage</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:32px 0;">
<tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:28px 40px;background:linear-gradient(135deg,#1e3a8a,#7c3aed);background-color:#1e3a8a;">
    <h1 style="margin:0;font-size:22px;color:#ffffff;">Neue Kontaktanfrage</h1>
    <p style="margin:6px 0 0;font-size:14px;color:#dbeafe;">über das Kontaktformular von {{.AgencyName}}</p>
  </td></tr>
  <tr><td style="padding:28px 40px 8px;">
    <table width="100%" cellpadding="0" cellspacing="0" style="font-size:15px;color:#1f2937;">
      <tr>
        <td style="padding:8px 0;width:160px;color:#6b7280;vertical-align:top;">Name</td>
        <td style="padding:8px 0;font-weight:bold;">{{.Name}}</td>
      </tr>
      <tr>
        <td style="padding:8px 0;color:#6b7280;vertical-align:top;">E-Mail</td>
        <td style="padding:8px 0;"><a href="mailto:{{.Email}}" style="color:#1e3a8a;">{{.Email}}</a></td>
      </tr>
      {{- if .Company}}
      <tr>
        <td style="padding:8px 0;color:#6b7280;vertical-align:top;">Unternehmen</td>
        <td style="padding:8px 0;">{{.Company}}</td>
      </tr>
      {{- end}}
      {{- if .Phone}}
      <tr>
        <td style="padding:8px 0;color:#6b7280;vertical-align:top;">Telefon</td>
        <td style="padding:8px 0;"><a href="tel:{{.Phone}}" style="color:#1e3a8a;">{{.Phone}}</a></td>
      </tr>
      {{- end}}
      <tr>
        <td style="padding:8px 0;color:#6b7280;vertical-align:top;">Leistung</td>
        <td style="padding:8px 0;"><span style="display:inline-block;padding:2px 10px;border-radius:12px;background-color:#ede9fe;color:#5b21b6;">{{.ServiceLabel}}</span></td>
      </tr>
      <tr>
        <td style="padding:8px 0;color:#6b7280;vertical-align:top;">Budget</td>
        <td style="padding:8px 0;">{{.BudgetLabel}}</td>
      </tr>
    </table>
  </td></tr>
  <tr><td style="padding:8px 40px 24px;">
    <p style="margin:0 0 8px;font-size:13px;color:#6b7280;text-transform:uppercase;letter-spacing:1px;">Nachricht</p>
    <div style="padding:16px;background-color:#f9fafb;border-left:4px solid #7c3aed;font-size:15px;line-height:1.6;color:#1f2937;">{{nl2br .Message}}</div>
  </td></tr>
  <tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#8888a0;">Eingegangen am {{.ReceivedAt}} &middot; Referenz {{.ReferenceID}}</p>
    <p style="margin:6px 0 0;font-size:12px;color:#8888a0;">Antworten Sie direkt auf diese E-Mail, um {{.Name}} zu erreichen.</p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`

// confirmationTemplate is the acknowledgment sent to the visitor
const confirmationTemplate = `<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Vielen Dank für Ihre Anfrage</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:32px 0;">
<tr><td align="center">
<table width="600" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:32px 40px;text-align:center;background:linear-gradient(135deg,#1e3a8a,#7c3aed);background-color:#1e3a8a;">
    <h1 style="margin:0;font-size:24px;color:#ffffff;">Vielen Dank für Ihre Anfrage!</h1>
  </td></tr>
  <tr><td style="padding:32px 40px 8px;font-size:15px;line-height:1.6;color:#1f2937;">
    <p style="margin:0 0 16px;">Hallo {{.Name}},</p>
    <p style="margin:0 0 16px;">vielen Dank für Ihr Interesse an einer Zusammenarbeit im Bereich <strong>{{.ServiceLabel}}</strong>. Wir haben Ihre Nachricht erhalten und melden uns innerhalb von 24 Stunden (werktags) bei Ihnen.</p>
  </td></tr>
  <tr><td style="padding:8px 40px 16px;">
    <p style="margin:0 0 8px;font-size:13px;color:#6b7280;text-transform:uppercase;letter-spacing:1px;">Ihre Nachricht</p>
    <div style="padding:16px;background-color:#f9fafb;border-left:4px solid #7c3aed;font-size:15px;line-height:1.6;color:#1f2937;">{{nl2br .Message}}</div>
  </td></tr>
  <tr><td style="padding:16px 40px 24px;font-size:15px;line-height:1.6;color:#1f2937;">
    <p style="margin:0 0 8px;font-weight:bold;">Wie geht es weiter?</p>
    <ol style="margin:0;padding-left:20px;">
      <li style="margin-bottom:4px;">Wir prüfen Ihre Anfrage und bereiten erste Fragen vor.</li>
      <li style="margin-bottom:4px;">In einem kostenlosen Erstgespräch lernen wir Ihr Projekt kennen.</li>
      <li>Sie erhalten ein individuelles Angebot.</li>
    </ol>
  </td></tr>
  <tr><td style="padding:0 40px 32px;font-size:15px;line-height:1.6;color:#1f2937;">
    <p style="margin:0;">Herzliche Grüße<br>Ihr Team von {{.AgencyName}}</p>
  </td></tr>
  <tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;text-align:center;">
    <p style="margin:0;font-size:12px;color:#aaaabc;">
      <a href="{{.Website}}" style="color:#7c3aed;text-decoration:none;">{{.Website}}</a> &mdash; Diese E-Mail wurde automatisch versendet.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`
