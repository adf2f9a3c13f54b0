package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-service/internal/config"
)

type fakeSecrets struct {
	value *string
	err   error
}

func (f fakeSecrets) GetSecretValue(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func TestApplyOverridesSensitiveFields(t *testing.T) {
	overlay := &AWSOverlay{
		client:     fakeSecrets{value: aws.String(`{"DB_DSN":"postgres://prod/freight","JWT_ACCESS_SECRET":"s3cr3t"}`)},
		secretName: "freight/prod",
	}
	cfg := &config.Config{DB: config.DBConfig{DSN: "postgres://local"}}

	require.NoError(t, overlay.Apply(context.Background(), cfg))
	assert.Equal(t, "postgres://prod/freight", cfg.DB.DSN)
	assert.Equal(t, "s3cr3t", cfg.Auth.AccessSecret)
}

func TestApplyKeepsFieldsMissingFromSecret(t *testing.T) {
	overlay := &AWSOverlay{client: fakeSecrets{value: aws.String(`{}`)}, secretName: "freight/prod"}
	cfg := &config.Config{DB: config.DBConfig{DSN: "postgres://local"}}

	require.NoError(t, overlay.Apply(context.Background(), cfg))
	assert.Equal(t, "postgres://local", cfg.DB.DSN)
}

func TestApplyErrors(t *testing.T) {
	cfg := &config.Config{}

	overlay := &AWSOverlay{client: fakeSecrets{err: errors.New("boom")}, secretName: "x"}
	assert.Error(t, overlay.Apply(context.Background(), cfg))

	overlay = &AWSOverlay{client: fakeSecrets{}, secretName: "x"}
	assert.Error(t, overlay.Apply(context.Background(), cfg))

	overlay = &AWSOverlay{client: fakeSecrets{value: aws.String("not json")}, secretName: "x"}
	assert.Error(t, overlay.Apply(context.Background(), cfg))
}
