package i18n

import (
	"github.com/rpupo63/portfolio-backend/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for text the service itself produces.
const (
	MsgNameTooShort    = "contact.name.too_short"
	MsgEmailInvalid    = "contact.email.invalid"
	MsgSubjectTooShort = "contact.subject.too_short"
	MsgMessageTooShort = "contact.message.too_short"
	MsgContactSent     = "contact.sent"
	MsgContactFailed   = "contact.failed"
	MsgProjectsTitle   = "projects.title"
	MsgAllProjects     = "projects.all"
)

func init() {
	registerEnglish(language.English)
	registerArabic(language.Arabic)
}

func registerEnglish(lang language.Tag) {
	message.SetString(lang, MsgNameTooShort, "Name must be at least %d characters")
	message.SetString(lang, MsgEmailInvalid, "Please enter a valid email address")
	message.SetString(lang, MsgSubjectTooShort, "Subject must be at least %d characters")
	message.SetString(lang, MsgMessageTooShort, "Message must be at least %d characters")
	message.SetString(lang, MsgContactSent, "Thank you! Your message has been sent.")
	message.SetString(lang, MsgContactFailed, "Something went wrong. Please try again later.")
	message.SetString(lang, MsgProjectsTitle, "Projects")
	message.SetString(lang, MsgAllProjects, "All Projects")
}

func registerArabic(lang language.Tag) {
	message.SetString(lang, MsgNameTooShort, "يجب أن يتكون الاسم من %d أحرف على الأقل")
	message.SetString(lang, MsgEmailInvalid, "يرجى إدخال بريد إلكتروني صالح")
	message.SetString(lang, MsgSubjectTooShort, "يجب أن يتكون الموضوع من %d أحرف على الأقل")
	message.SetString(lang, MsgMessageTooShort, "يجب أن تتكون الرسالة من %d أحرف على الأقل")
	message.SetString(lang, MsgContactSent, "شكراً لك! تم إرسال رسالتك.")
	message.SetString(lang, MsgContactFailed, "حدث خطأ ما. يرجى المحاولة لاحقاً.")
	message.SetString(lang, MsgProjectsTitle, "المشاريع")
	message.SetString(lang, MsgAllProjects, "جميع المشاريع")
}

// Printer returns a message printer for the locale.
func Printer(locale models.Locale) *message.Printer {
	return message.NewPrinter(Tag(locale))
}
