package email

import (
	"bytes"
	"fmt"
	"html/template"

	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
)

var gpsAlertTemplate = template.Must(template.New("gps_alert").Funcs(template.FuncMap{
	"meters": func(v float64) string { return fmt.Sprintf("%.1f", v) },
}).Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #c0392b;">Alerte deplacement GPS</h2>
  <p>Bonjour {{.RecipientName}},</p>
  <p>Le capteur <strong>{{.SensorIdentifier}}</strong>{{if .HiveCode}} de la ruche <strong>{{.HiveCode}}</strong>{{end}} s'est deplace de sa position de reference.</p>
  <table style="border-collapse: collapse;">
    <tr><td style="padding: 4px 12px 4px 0;">Distance mesuree</td><td><strong>{{meters .DistanceMeters}} m</strong></td></tr>
    <tr><td style="padding: 4px 12px 4px 0;">Seuil configure</td><td>{{meters .ThresholdMeters}} m</td></tr>
  </table>
  <p>Verifiez le rucher au plus vite. Une alerte a ete enregistree dans votre espace.</p>
  <p>Hivewatch</p>
</body>
</html>
`))

// RenderGPSAlert renders the HTML body of the GPS displacement email.
func RenderGPSAlert(mail service.GPSAlertEmail) (string, error) {
	data := mail
	if data.RecipientName == "" {
		data.RecipientName = data.To
	}

	var buf bytes.Buffer
	if err := gpsAlertTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to render GPS alert email")
	}

	return buf.String(), nil
}
