package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func validForm() ContactForm {
	return ContactForm{
		Name:    "Lina",
		Email:   "lina@example.com",
		Subject: "Project inquiry",
		Message: "I would like to talk about a new website.",
	}
}

func invalidFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr), "expected a multierror, got %v", err)

	fields := map[string]string{}
	for _, e := range merr.Errors {
		var apiErr *errs.ApiErr
		require.True(t, errors.As(e, &apiErr))
		assert.True(t, errs.IsInvalidFieldError(apiErr))
		fields[apiErr.Field] = apiErr.Details
	}
	return fields
}

func Test_ContactFormValid(t *testing.T) {
	assert.NoError(t, validForm().Validate(models.LocaleEN))
}

func Test_ContactFormTrimsBeforeChecking(t *testing.T) {
	form := validForm()
	form.Name = "  A  "
	form.Subject = "  Hi  "

	fields := invalidFields(t, form.Validate(models.LocaleEN))

	assert.Equal(t, "Name must be at least 2 characters", fields["name"])
	assert.Equal(t, "Subject must be at least 5 characters", fields["subject"])
	assert.Len(t, fields, 2)
}

func Test_ContactFormCountsRunes(t *testing.T) {
	form := validForm()
	form.Name = "لي"

	assert.NoError(t, form.Validate(models.LocaleAR))
}

func Test_ContactFormEmail(t *testing.T) {
	for _, email := range []string{"", "not-an-email", "Lina <lina@example.com>", "lina@"} {
		form := validForm()
		form.Email = email

		fields := invalidFields(t, form.Validate(models.LocaleEN))

		assert.Equal(t, "Please enter a valid email address", fields["email"], email)
	}
}

func Test_ContactFormLocalizedMessages(t *testing.T) {
	fields := invalidFields(t, ContactForm{}.Validate(models.LocaleAR))

	require.Len(t, fields, 4)
	assert.Equal(t, "يرجى إدخال بريد إلكتروني صالح", fields["email"])
	assert.Contains(t, fields["message"], "الرسالة")
}

func Test_LogSender(t *testing.T) {
	sender := NewLogSender(zerolog.Nop())

	assert.NoError(t, sender.Send(context.Background(), ContactMessage{ContactForm: validForm()}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sender.Send(ctx, ContactMessage{ContactForm: validForm()}), context.Canceled)
}
