package mail

import (
	"context"
	"fmt"
	"log"
	"net/url"
)

type Sender interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogSender escribe el correo en el log en lugar de enviarlo.
type LogSender struct {
	ResetURL string
}

func NewLogSender(resetURL string) *LogSender {
	return &LogSender{ResetURL: resetURL}
}

func (s *LogSender) ResetLink(token string) (string, error) {
	u, err := url.Parse(s.ResetURL)
	if err != nil {
		return "", fmt.Errorf("invalid reset url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *LogSender) SendPasswordReset(_ context.Context, email, token string) error {
	link, err := s.ResetLink(token)
	if err != nil {
		return err
	}
	log.Println("========================================================")
	log.Printf("PASSWORD RESET EMAIL")
	log.Printf("To: %s", email)
	log.Printf("Subject: Đặt lại mật khẩu - Gia Kiệm Số")
	log.Printf("Body: Để đặt lại mật khẩu, vui lòng mở liên kết sau: %s", link)
	log.Println("========================================================")
	return nil
}
