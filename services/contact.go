package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/go-openapi/strfmt"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
)

const (
	minNameLength    = 2
	minSubjectLength = 5
	minMessageLength = 10
)

// ContactForm is a message submitted through the site's contact section.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace from every field.
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks every field and returns one errs.ApiErr per invalid field,
// aggregated in a multierror, with messages in the given locale.
func (f ContactForm) Validate(locale models.Locale) error {
	f = f.Normalize()
	printer := i18n.Printer(locale)

	var result *multierror.Error
	if utf8.RuneCountInString(f.Name) < minNameLength {
		result = multierror.Append(result, errs.NewInvalidFieldError("name", printer.Sprintf(i18n.MsgNameTooShort, minNameLength)))
	}
	if !strfmt.IsEmail(f.Email) || strings.ContainsAny(f.Email, "<> ") {
		result = multierror.Append(result, errs.NewInvalidFieldError("email", printer.Sprintf(i18n.MsgEmailInvalid)))
	}
	if utf8.RuneCountInString(f.Subject) < minSubjectLength {
		result = multierror.Append(result, errs.NewInvalidFieldError("subject", printer.Sprintf(i18n.MsgSubjectTooShort, minSubjectLength)))
	}
	if utf8.RuneCountInString(f.Message) < minMessageLength {
		result = multierror.Append(result, errs.NewInvalidFieldError("message", printer.Sprintf(i18n.MsgMessageTooShort, minMessageLength)))
	}
	return result.ErrorOrNil()
}

// ContactMessage is a validated form plus the locale it was submitted in.
type ContactMessage struct {
	ContactForm
	Locale models.Locale
}

// ContactSender delivers contact messages.
type ContactSender interface {
	Send(ctx context.Context, msg ContactMessage) error
}

// LogSender records messages in the log instead of delivering them. It is
// used when no mail provider is configured.
type LogSender struct {
	logger zerolog.Logger
}

func NewLogSender(logger zerolog.Logger) LogSender {
	return LogSender{logger: logger.With().Str("sender", "log").Logger()}
}

func (s LogSender) Send(ctx context.Context, msg ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info().
		Str("name", msg.Name).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Stringer("locale", msg.Locale).
		Int("messageLength", utf8.RuneCountInString(msg.Message)).
		Msg("contact message received")
	return nil
}
