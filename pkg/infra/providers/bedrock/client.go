package bedrock

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/NeuralTrust/InclusionGuard/pkg/infra/providers"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	stsTypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRegion      = "us-east-1"
	defaultSessionName = "InclusionGuardSession"
)

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
}

func NewBedrockClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

// Ask sends the prompt through the Bedrock Converse API, which gives every
// model family the same message shape.
func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if config.Credentials.AwsBedrock == nil {
		return nil, fmt.Errorf("aws credentials are required")
	}

	runtime, err := c.getOrCreateClient(ctx, config.Credentials, config.BaseURL)
	if err != nil {
		return nil, err
	}

	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(config.Model),
		Messages: []types.Message{
			{
				Role:    types.ConversationRoleUser,
				Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: prompt}},
			},
		},
	}

	var system []types.SystemContentBlock
	if config.SystemPrompt != "" {
		system = append(system, &types.SystemContentBlockMemberText{Value: config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		system = append(system, &types.SystemContentBlockMemberText{Value: providers.FormatInstructions(config.Instructions)})
	}
	input.System = system

	if config.MaxTokens > 0 || config.Temperature > 0 {
		inference := &types.InferenceConfiguration{}
		if config.MaxTokens > 0 {
			inference.MaxTokens = aws.Int32(int32(config.MaxTokens))
		}
		if config.Temperature > 0 {
			inference.Temperature = aws.Float32(float32(config.Temperature))
		}
		input.InferenceConfig = inference
	}

	out, err := runtime.Converse(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("bedrock request failed: %w", err)
	}

	msg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return nil, fmt.Errorf("unexpected bedrock output type %T", out.Output)
	}
	var text strings.Builder
	for _, block := range msg.Value.Content {
		if t, ok := block.(*types.ContentBlockMemberText); ok {
			text.WriteString(t.Value)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("no text content returned")
	}

	resp := &providers.CompletionResponse{
		ID:       providers.ResponseID("bedrock"),
		Model:    config.Model,
		Response: text.String(),
	}
	if out.Usage != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(aws.ToInt32(out.Usage.InputTokens)),
			CompletionTokens: int(aws.ToInt32(out.Usage.OutputTokens)),
			TotalTokens:      int(aws.ToInt32(out.Usage.TotalTokens)),
		}
	}
	return resp, nil
}

func (c *client) getOrCreateClient(
	ctx context.Context,
	credentials providers.Credentials,
	baseURL string,
) (*bedrockruntime.Client, error) {
	key := buildClientKey(credentials, baseURL)
	if v, ok := c.clientPool.Load(key); ok {
		if cli, ok := v.(*bedrockruntime.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		if v, ok := c.clientPool.Load(key); ok {
			return v, nil
		}
		cfg, err := buildAwsConfig(ctx, credentials)
		if err != nil {
			return nil, err
		}
		cli := bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
			if baseURL != "" {
				o.BaseEndpoint = aws.String(baseURL)
			}
		})
		c.clientPool.Store(key, cli)
		return cli, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build bedrock client: %w", err)
	}
	cli, ok := v.(*bedrockruntime.Client)
	if !ok {
		return nil, fmt.Errorf("invalid client type in pool")
	}
	return cli, nil
}

func buildClientKey(credentials providers.Credentials, baseURL string) string {
	b := credentials.AwsBedrock
	return fmt.Sprintf("%s:%s:%v:%s:%s", b.AccessKey, b.Region, b.UseRole, b.RoleARN, baseURL)
}

func buildAwsConfig(ctx context.Context, credentials providers.Credentials) (aws.Config, error) {
	b := credentials.AwsBedrock
	region := b.Region
	if region == "" {
		region = defaultRegion
	}

	if b.UseRole && b.RoleARN != "" {
		creds, err := assumeRole(ctx, b.AccessKey, b.SecretKey, b.RoleARN, region)
		if err != nil {
			return aws.Config{}, err
		}
		return loadAWSConfig(ctx, *creds.AccessKeyId, *creds.SecretAccessKey, *creds.SessionToken, region)
	}

	// no static keys: fall back to the default chain (env, shared config, instance role)
	if b.AccessKey == "" {
		return config.LoadDefaultConfig(ctx, config.WithRegion(region))
	}
	return loadAWSConfig(ctx, b.AccessKey, b.SecretKey, b.SessionToken, region)
}

func loadAWSConfig(ctx context.Context, accessKey, secretKey, sessionToken, region string) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     accessKey,
					SecretAccessKey: secretKey,
					SessionToken:    sessionToken,
				}, nil
			},
		)),
		config.WithRegion(region),
	)
}

func assumeRole(ctx context.Context, accessKey, secretKey, roleARN, region string) (*stsTypes.Credentials, error) {
	baseCfg, err := loadAWSConfig(ctx, accessKey, secretKey, "", region)
	if err != nil {
		return nil, fmt.Errorf("unable to load base AWS config: %w", err)
	}
	stsClient := sts.NewFromConfig(baseCfg)

	output, err := stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(defaultSessionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assume role: %w", err)
	}
	return output.Credentials, nil
}
