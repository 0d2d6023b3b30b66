package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"

	"github.com/gulfrate/gulfrate/internal/model"
)

// SES sends confirmation emails through Amazon SES.
type SES struct {
	client *ses.Client
	from   string
}

func NewSES(ctx context.Context, region, from string) (*SES, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SES{client: ses.NewFromConfig(cfg), from: from}, nil
}

func (m *SES) SendLeadConfirmation(ctx context.Context, lead *model.Lead) error {
	input := &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{lead.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(confirmationSubject()),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(confirmationBody(lead)),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	log.Info().Str("message_id", aws.ToString(out.MessageId)).
		Int64("lead_id", lead.ID).Msg("confirmation email sent")
	return nil
}
