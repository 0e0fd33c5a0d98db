package interfaces

type MailSender interface {
	SendOTPEmail(to string, code string) error
}
