package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"freight-service/internal/config"
)

const (
	keyDSN          = "DB_DSN"
	keyAccessSecret = "JWT_ACCESS_SECRET"
)

type secretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSOverlay reads a JSON key/value secret and overrides sensitive config fields with it.
type AWSOverlay struct {
	client     secretGetter
	secretName string
}

func NewAWSOverlay(ctx context.Context, region, secretName string) (*AWSOverlay, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSOverlay{
		client:     secretsmanager.NewFromConfig(cfg),
		secretName: secretName,
	}, nil
}

func (o *AWSOverlay) Apply(ctx context.Context, cfg *config.Config) error {
	result, err := o.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(o.secretName),
	})
	if err != nil {
		return fmt.Errorf("failed to retrieve AWS secret: %w", err)
	}
	if result.SecretString == nil {
		return fmt.Errorf("AWS secret '%s' has no string value", o.secretName)
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(*result.SecretString), &values); err != nil {
		return fmt.Errorf("failed to parse AWS secret as JSON: %w", err)
	}

	if dsn := values[keyDSN]; dsn != "" {
		cfg.DB.DSN = dsn
	}
	if secret := values[keyAccessSecret]; secret != "" {
		cfg.Auth.AccessSecret = secret
	}
	return nil
}
