package mailer

import (
	"html/template"
	"strings"

	"detailwave.be/booking-api/pkg/models"
)

const toBeDetermined = "À définir"

type bookingEmailItem struct {
	Name        string
	OptionLabel string
	Price       int
}

type bookingEmailData struct {
	FullName   string
	Phone      string
	Email      string
	EmailText  string
	Address    string
	PostalCode string
	City       string
	Note       string
	Date       string
	Time       string
	Items      []bookingEmailItem
	Total      string
}

var bookingEmailTmpl = template.Must(template.New("booking-email").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Nouvelle commande DETAILWAVE</title>
</head>
<body style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #f3f4f6; margin: 0; padding: 40px 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 16px; overflow: hidden;">

    <div style="background-color: #1e3a8a; padding: 32px 20px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 24px; letter-spacing: 2px;">DETAILWAVE</h1>
      <p style="color: #bfdbfe; margin: 8px 0 0; font-size: 14px;">Nouvelle demande de rendez-vous</p>
    </div>

    <div style="padding: 32px;">

      <div style="margin-bottom: 32px;">
        <h2 style="font-size: 18px; font-weight: bold; color: #111827; margin-bottom: 16px; border-bottom: 2px solid #e5e7eb; padding-bottom: 8px;">👤 Client</h2>
        <p style="margin: 8px 0; color: #4b5563;"><strong>{{.FullName}}</strong></p>
        <p style="margin: 8px 0; color: #4b5563;">📞 <a href="tel:{{.Phone}}" style="color: #2563EB; text-decoration: none;">{{.Phone}}</a></p>
        <p style="margin: 8px 0; color: #4b5563;">✉️ <a href="mailto:{{.Email}}" style="color: #2563EB; text-decoration: none;">{{.EmailText}}</a></p>
      </div>

      <div style="margin-bottom: 32px;">
        <h2 style="font-size: 18px; font-weight: bold; color: #111827; margin-bottom: 16px; border-bottom: 2px solid #e5e7eb; padding-bottom: 8px;">📍 Adresse</h2>
        <p style="margin: 8px 0; color: #4b5563;">{{.Address}}</p>
        <p style="margin: 8px 0; color: #4b5563;">{{.PostalCode}} {{.City}}</p>
        {{if .Note}}<div style="background-color: #fffbeb; padding: 12px; border-radius: 8px; margin-top: 12px; color: #92400e; font-size: 14px; border: 1px solid #fcd34d;">📝 <strong>Note:</strong> {{.Note}}</div>{{end}}
      </div>

      <div style="margin-bottom: 32px;">
        <h2 style="font-size: 18px; font-weight: bold; color: #111827; margin-bottom: 16px; border-bottom: 2px solid #e5e7eb; padding-bottom: 8px;">📅 Rendez-vous souhaité</h2>
        <div style="display: flex; gap: 20px;">
          <div style="background-color: #f9fafb; padding: 12px; border-radius: 8px; flex: 1; text-align: center; border: 1px solid #e5e7eb;">
            <span style="display: block; font-size: 10px; color: #6b7280; text-transform: uppercase; letter-spacing: 1px; margin-bottom: 4px;">Date</span>
            <strong style="color: #111827; font-size: 16px;">{{.Date}}</strong>
          </div>
          <div style="background-color: #f9fafb; padding: 12px; border-radius: 8px; flex: 1; text-align: center; border: 1px solid #e5e7eb;">
            <span style="display: block; font-size: 10px; color: #6b7280; text-transform: uppercase; letter-spacing: 1px; margin-bottom: 4px;">Heure</span>
            <strong style="color: #111827; font-size: 16px;">{{.Time}}</strong>
          </div>
        </div>
      </div>

      <div style="margin-bottom: 32px;">
        <h2 style="font-size: 18px; font-weight: bold; color: #111827; margin-bottom: 16px; border-bottom: 2px solid #e5e7eb; padding-bottom: 8px;">🛒 Panier</h2>
        {{range .Items}}
        <div style="display: flex; align-items: center; border-bottom: 1px solid #e5e7eb; padding-bottom: 12px; margin-bottom: 12px;">
          <div style="flex: 1;">
            <h4 style="margin: 0; font-size: 16px; color: #1f2937;">{{.Name}}</h4>
            {{if .OptionLabel}}<p style="margin: 4px 0 0; font-size: 14px; color: #6b7280;">{{.OptionLabel}}</p>{{end}}
          </div>
          <div style="font-weight: bold; color: #1f2937;">{{.Price}}€</div>
        </div>
        {{end}}
        <div style="margin-top: 20px; text-align: right; padding-top: 20px; border-top: 2px solid #f3f4f6;">
          <p style="margin: 0 0 4px; font-size: 14px; color: #6b7280;">Total estimé</p>
          <p style="margin: 0; font-size: 28px; font-weight: bold; color: #2563EB;">{{.Total}}</p>
        </div>
      </div>

    </div>

    <div style="background-color: #f9fafb; padding: 24px; text-align: center; border-top: 1px solid #e5e7eb;">
      <p style="margin: 0; font-size: 12px; color: #9ca3af;">Cet e-mail a été généré automatiquement par le site DetailWave.</p>
      <p style="margin: 8px 0 0; font-size: 12px; color: #9ca3af;">
        <a href="https://detailwave.be" style="color: #2563EB; text-decoration: none;">detailwave.be</a>
      </p>
    </div>
  </div>
</body>
</html>
`))

// RenderBookingEmail renders the HTML notification for one booking request.
// Missing optional fields get explicit placeholder text so the business never
// sees an empty slot.
func RenderBookingEmail(req *models.BookingRequest) (string, error) {
	data := bookingEmailData{
		FullName:   req.FullName(),
		Phone:      req.Phone,
		Email:      req.Email,
		EmailText:  req.Email,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		Note:       req.Note,
		Date:       req.PreferredDate,
		Time:       req.PreferredTime,
		Total:      req.Total,
	}
	if data.EmailText == "" {
		data.EmailText = "Non renseigné"
	}
	if data.Date == "" {
		data.Date = toBeDetermined
	}
	if data.Time == "" {
		data.Time = toBeDetermined
	}

	data.Items = make([]bookingEmailItem, 0, len(req.Items))
	for i := range req.Items {
		item := &req.Items[i]
		emailItem := bookingEmailItem{
			Name:  item.Name,
			Price: item.EffectivePrice(),
		}
		if item.SelectedOption != nil {
			emailItem.OptionLabel = item.SelectedOption.Label
		}
		data.Items = append(data.Items, emailItem)
	}

	var sb strings.Builder
	if err := bookingEmailTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
