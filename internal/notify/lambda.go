package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

const (
	defaultRegion = "us-east-1"

	localAccessKey = "ABC"
	localSecretKey = "EFG"
)

type InvokeAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

// LambdaPublisher invokes a function asynchronously with the event as payload.
type LambdaPublisher struct {
	api      InvokeAPI
	function string
}

func NewLambdaPublisher(ctx context.Context, function, endpoint string) (*LambdaPublisher, error) {
	opts := []func(*config.LoadOptions) error{config.WithDefaultRegion(defaultRegion)}
	if endpoint != "" {
		// local Lambda emulators do not verify signatures
		provider := credentials.NewStaticCredentialsProvider(localAccessKey, localSecretKey, "")
		opts = append(opts, config.WithCredentialsProvider(provider))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := lambda.NewFromConfig(awsCfg, func(o *lambda.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return NewLambdaPublisherFromAPI(client, function), nil
}

func NewLambdaPublisherFromAPI(api InvokeAPI, function string) *LambdaPublisher {
	return &LambdaPublisher{api: api, function: function}
}

func (p *LambdaPublisher) Publish(ctx context.Context, event domain.CopyCompleted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal copy event: %w", err)
	}

	output, err := p.api.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(p.function),
		InvocationType: types.InvocationTypeEvent,
		Payload:        payload,
	})
	if err != nil {
		return fmt.Errorf("invoke %s: %w", p.function, err)
	}

	if output.FunctionError != nil {
		return fmt.Errorf("invoke %s: function error %s", p.function, aws.ToString(output.FunctionError))
	}

	logger.Debugf("Invoked %s for copy event %s, status %d", p.function, event.ID, output.StatusCode)
	return nil
}
