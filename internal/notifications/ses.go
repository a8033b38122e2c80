package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the slice of the SES client the mailer uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESMailer struct {
	client SESAPI
}

func NewSESMailer(client SESAPI) *SESMailer {
	if client == nil {
		return nil
	}
	return &SESMailer{client: client}
}

// NewSESMailerFromEnv loads the default AWS credential chain for region. It returns
// ErrNotConfigured when no region or no credentials can be resolved.
func NewSESMailerFromEnv(ctx context.Context, region string) (*SESMailer, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: aws region not set", ErrNotConfigured)
	}
	if cfg.Credentials == nil {
		return nil, fmt.Errorf("%w: no aws credentials", ErrNotConfigured)
	}

	retrieveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := cfg.Credentials.Retrieve(retrieveCtx); err != nil {
		return nil, fmt.Errorf("%w: aws credentials: %v", ErrNotConfigured, err)
	}
	return NewSESMailer(ses.NewFromConfig(cfg)), nil
}

func (m *SESMailer) Send(ctx context.Context, msg Message) (string, error) {
	if m == nil {
		return "", ErrNotConfigured
	}
	if err := validateMessage(msg); err != nil {
		return "", err
	}

	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(msg.From),
		Destination: &types.Destination{ToAddresses: msg.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses send failed: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
