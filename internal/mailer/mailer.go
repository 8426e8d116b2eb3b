package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/blues/tfs/internal/config"
)

// Sender 邮件发送接口，方便在测试中替换实现
type Sender interface {
	Send(to, subject, textBody, htmlBody string) error
}

// Mailer 基于SMTP的邮件发送器
type Mailer struct {
	cfg config.MailConfig
}

// New 创建邮件发送器
func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send 发送一封 multipart/alternative 邮件
func (m *Mailer) Send(to, subject, textBody, htmlBody string) error {
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)

	msg := fmt.Sprintf("From: %s <%s>\r\n", m.cfg.FromName, m.cfg.FromAddress)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n", subject)
	msg += "MIME-Version: 1.0\r\n"
	msg += "Content-Type: multipart/alternative; boundary=\"boundary\"\r\n\r\n"
	msg += "--boundary\r\n"
	msg += "Content-Type: text/plain; charset=UTF-8\r\n\r\n"
	msg += textBody + "\r\n"
	msg += "--boundary\r\n"
	msg += "Content-Type: text/html; charset=UTF-8\r\n\r\n"
	msg += htmlBody + "\r\n"
	msg += "--boundary--\r\n"

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	return smtp.SendMail(addr, auth, m.cfg.FromAddress, []string{to}, []byte(msg))
}
