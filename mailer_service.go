package mailop

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/mailop/pkg/mailer"
)

// operationTag labels every message sent by the operation at the provider.
const operationTag = "operation"

type mailerService struct {
	mailer *mailer.Mailer
}

// NewMailerService adapts a mailer.Mailer to MailService. HTML payloads are
// sent as they are; template payloads are rendered by the mailer.
func NewMailerService(m *mailer.Mailer) MailService {
	return &mailerService{mailer: m}
}

func (s *mailerService) Send(ctx context.Context, p Payload) error {
	tags := mailer.Tags{operationTag: "mail"}

	switch b := p.Body.(type) {
	case HTMLBody:
		return s.mailer.SendRaw(ctx, &mailer.Email{
			To:      p.To,
			Subject: p.Subject,
			ReplyTo: p.ReplyTo,
			HTML:    string(b),
			Tags:    tags,
		})
	case TemplateBody:
		return s.mailer.Send(ctx, mailer.SendParams{
			To:       p.To,
			Subject:  p.Subject,
			ReplyTo:  p.ReplyTo,
			Template: b.Name,
			Data:     b.Data,
			Tags:     tags,
		})
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedBody, p.Body)
	}
}
