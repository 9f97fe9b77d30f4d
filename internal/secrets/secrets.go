// Package secrets resolves the SSO client secret, either from configuration
// or from AWS Secrets Manager when an ARN is configured.
package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"

	"github.com/carson-networks/walletsync/internal/config"
)

const resourceNotFoundException = "ResourceNotFoundException"

var ErrSecretNotFound = errors.New("secrets: secret not found")

// ManagerAPI is the subset of the Secrets Manager client used here.
type ManagerAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// NewManager builds a Secrets Manager client from the default AWS
// credential chain.
func NewManager(ctx context.Context, region string) (ManagerAPI, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("secrets: load aws config: %w", err)
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// ClientSecret returns env.SSOClientSecret unless env.SSOClientSecretARN
// is set, in which case the secret string is fetched through api.
func ClientSecret(ctx context.Context, env *config.Config, api ManagerAPI) (string, error) {
	if env.SSOClientSecretARN == "" {
		return env.SSOClientSecret, nil
	}
	if api == nil {
		return "", errors.New("secrets: no secrets manager client")
	}

	out, err := api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(env.SSOClientSecretARN),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == resourceNotFoundException {
			return "", fmt.Errorf("%w: %s", ErrSecretNotFound, env.SSOClientSecretARN)
		}
		return "", fmt.Errorf("secrets: get %s: %w", env.SSOClientSecretARN, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secrets: %s has no string value", env.SSOClientSecretARN)
	}
	return aws.ToString(out.SecretString), nil
}
