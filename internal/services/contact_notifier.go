package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/mahin-rahman/greenbasket/internal/models"
)

// ContactNotifier forwards contact form submissions to the team inbox.
type ContactNotifier interface {
	NotifyNewMessage(ctx context.Context, m *models.ContactMessage) error
}

// SESContactNotifier sends the notification through AWS SES.
type SESContactNotifier struct {
	sesClient   *ses.Client
	fromAddress string
	toAddress   string
	logger      *slog.Logger
}

func NewSESContactNotifier(region, fromAddress, toAddress string, logger *slog.Logger) (*SESContactNotifier, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESContactNotifier{
		sesClient:   ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		toAddress:   toAddress,
		logger:      logger,
	}, nil
}

func (s *SESContactNotifier) NotifyNewMessage(ctx context.Context, m *models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message from %s", m.Name)

	textBody := fmt.Sprintf(`A new contact message was submitted.

Name:  %s
Email: %s
Phone: %s

%s
`, m.Name, m.Email, m.Phone, m.Message)

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toAddress},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(textBody),
				},
			},
		},
	}

	result, err := s.sesClient.SendEmail(ctx, input)
	if err != nil {
		s.logger.Error("failed to send contact notification via SES", slog.Any("error", err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("contact notification sent", slog.String("message_id", *result.MessageId))
	return nil
}

// NoopContactNotifier is wired when outbound email is not configured.
type NoopContactNotifier struct{}

func (NoopContactNotifier) NotifyNewMessage(ctx context.Context, m *models.ContactMessage) error {
	return nil
}
