package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет уведомления по SMTP.
//
// Send никогда не возвращает ошибку наверх: доставка писем выполняется
// best-effort, её сбой не должен откатывать бронирование или смену
// статуса. Результат отправки возвращается как bool и логируется.
type Mailer struct {
	host     string
	port     string
	from     string
	password string
	// testEmailOnly, если задан, перенаправляет все письма на этот адрес
	testEmailOnly string
	enabled       bool
	log           Logger
}

// New создает SMTP mailer. При enabled=false все отправки превращаются
// в no-op с записью в лог.
func New(host, port, from, password, testEmailOnly string, enabled bool, log Logger) (*Mailer, error) {
	if enabled && (host == "" || from == "") {
		return nil, fmt.Errorf("mailer: SMTP configuration incomplete")
	}

	return &Mailer{
		host:          host,
		port:          port,
		from:          from,
		password:      password,
		testEmailOnly: testEmailOnly,
		enabled:       enabled,
		log:           log,
	}, nil
}

// Send рендерит шаблон и отправляет письмо получателю.
// Возвращает true, если письмо доставлено на SMTP сервер.
func (m *Mailer) Send(recipient string, tmpl Template, tmplCtx Context) bool {
	if !m.enabled {
		m.log.Info("mailer disabled, skipping %s notification to %s", tmpl, recipient)
		return false
	}
	if recipient == "" {
		m.log.Warn("mailer: empty recipient for template %s, skipping", tmpl)
		return false
	}

	mt, ok := templates[tmpl]
	if !ok {
		m.log.Error("mailer: unknown template %q", tmpl)
		return false
	}

	subject, body, err := render(mt, tmplCtx)
	if err != nil {
		m.log.Error("mailer: failed to render template %s: %v", tmpl, err)
		return false
	}

	// Переопределяем получателя в тестовом режиме
	actualRecipient := recipient
	if m.testEmailOnly != "" {
		actualRecipient = m.testEmailOnly
		body += fmt.Sprintf("\n[TEST MODE] Original recipient: %s\n", recipient)
	}

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s", m.from, actualRecipient, subject, body)

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.from, []string{actualRecipient}, []byte(message)); err != nil {
		m.log.Warn("mailer: failed to send %s to %s: %v", tmpl, actualRecipient, err)
		return false
	}

	m.log.Info("mailer: sent %s to %s", tmpl, actualRecipient)
	return true
}

// SendToMany отправляет письмо каждому получателю независимо,
// возвращает число успешных доставок
func (m *Mailer) SendToMany(recipients []string, tmpl Template, tmplCtx Context) int {
	delivered := 0
	for _, r := range recipients {
		if m.Send(r, tmpl, tmplCtx) {
			delivered++
		}
	}
	return delivered
}

// render рендерит тему и тело письма
func render(mt mailTemplate, tmplCtx Context) (subject, body string, err error) {
	var subjBuf, bodyBuf bytes.Buffer

	if err := mt.subject.Execute(&subjBuf, tmplCtx); err != nil {
		return "", "", fmt.Errorf("render subject: %w", err)
	}
	if err := mt.body.Execute(&bodyBuf, tmplCtx); err != nil {
		return "", "", fmt.Errorf("render body: %w", err)
	}

	// Тема должна быть одной строкой
	subject = strings.TrimSpace(strings.ReplaceAll(subjBuf.String(), "\n", " "))
	return subject, bodyBuf.String(), nil
}
