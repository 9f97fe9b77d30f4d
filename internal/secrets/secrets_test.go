package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/walletsync/internal/config"
)

type mockManagerAPI struct {
	getSecretValueFunc func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

func (m *mockManagerAPI) GetSecretValue(
	ctx context.Context,
	params *secretsmanager.GetSecretValueInput,
	optFns ...func(*secretsmanager.Options),
) (*secretsmanager.GetSecretValueOutput, error) {
	if m.getSecretValueFunc != nil {
		return m.getSecretValueFunc(ctx, params, optFns...)
	}
	return nil, errors.New("GetSecretValue not implemented")
}

func TestClientSecret_PlainValueWithoutARN(t *testing.T) {
	env := &config.Config{SSOClientSecret: "plain"}

	secret, err := ClientSecret(context.Background(), env, nil)

	require.NoError(t, err)
	assert.Equal(t, "plain", secret)
}

func TestClientSecret_FetchesByARN(t *testing.T) {
	arn := "arn:aws:secretsmanager:eu-west-1:123456789012:secret:sso-AbCdEf"
	env := &config.Config{SSOClientSecret: "ignored", SSOClientSecretARN: arn}
	api := &mockManagerAPI{
		getSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			assert.Equal(t, arn, aws.ToString(params.SecretId))
			return &secretsmanager.GetSecretValueOutput{SecretString: aws.String("from-aws")}, nil
		},
	}

	secret, err := ClientSecret(context.Background(), env, api)

	require.NoError(t, err)
	assert.Equal(t, "from-aws", secret)
}

func TestClientSecret_NotFound(t *testing.T) {
	env := &config.Config{SSOClientSecretARN: "arn:missing"}
	api := &mockManagerAPI{
		getSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "not here"}
		},
	}

	_, err := ClientSecret(context.Background(), env, api)

	assert.ErrorIs(t, err, ErrSecretNotFound)
}

func TestClientSecret_BinarySecretRejected(t *testing.T) {
	env := &config.Config{SSOClientSecretARN: "arn:binary"}
	api := &mockManagerAPI{
		getSecretValueFunc: func(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
			return &secretsmanager.GetSecretValueOutput{SecretBinary: []byte{1, 2}}, nil
		},
	}

	_, err := ClientSecret(context.Background(), env, api)

	assert.ErrorContains(t, err, "no string value")
}
