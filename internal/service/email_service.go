package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"fluento/internal/models"
)

// EmailService sends notification emails via Amazon SES. When no sender
// address is configured the service is created disabled and every send is
// a silent no-op.
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// SendBadgeEmail congratulates a user on newly earned badges
func (s *EmailService) SendBadgeEmail(ctx context.Context, toEmail, displayName string, badges []models.Badge) error {
	if !s.enabled || toEmail == "" || len(badges) == 0 {
		return nil
	}

	subject := fmt.Sprintf("You earned %d new badge", len(badges))
	if len(badges) > 1 {
		subject += "s"
	}
	subject += "!"

	var body strings.Builder
	if displayName != "" {
		fmt.Fprintf(&body, "Hi %s,\n\n", displayName)
	}
	body.WriteString("Great practicing today! You just unlocked:\n\n")
	for _, b := range badges {
		fmt.Fprintf(&body, "  %s — %s\n", b.Name, b.Description)
	}
	body.WriteString("\nKeep your streak going!\n")

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body.String())},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send badge email: %w", err)
	}
	return nil
}
