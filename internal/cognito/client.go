package cognito

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cognitosrp "github.com/alexrudd/cognito-srp/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"

	"github.com/disruptops/cognitocache/internal/core"
)

var _ core.Authenticator = (*Client)(nil)

// Client performs the SRP handshake against a Cognito user pool.
// The SRP math is delegated to cognito-srp; this adapter only drives
// the InitiateAuth / RespondToAuthChallenge round trips and picks the
// requested token representation from the result.
type Client struct{}

func NewClient() *Client {
	return &Client{}
}

func (c *Client) Authenticate(ctx context.Context, creds core.CredentialSet) (string, error) {
	var secret *string
	if creds.ClientSecret != "" {
		secret = aws.String(creds.ClientSecret)
	}

	srp, err := cognitosrp.NewCognitoSRP(creds.Username, creds.Password, creds.UserPoolID, creds.ClientID, secret)
	if err != nil {
		return "", fmt.Errorf("preparing SRP exchange: %w", err)
	}

	// the user pool only needs to be addressed, not signed for
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(creds.Region),
		awsconfig.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return "", fmt.Errorf("loading AWS configuration: %w", err)
	}
	svc := cip.NewFromConfig(cfg)

	initOut, err := svc.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeUserSrpAuth,
		ClientId:       aws.String(srp.GetClientId()),
		AuthParameters: srp.GetAuthParams(),
	})
	if err != nil {
		return "", humanError(err)
	}

	result := initOut.AuthenticationResult
	if initOut.ChallengeName == types.ChallengeNameTypePasswordVerifier {
		responses, err := srp.PasswordVerifierChallenge(initOut.ChallengeParameters, time.Now())
		if err != nil {
			return "", fmt.Errorf("computing password verifier: %w", err)
		}

		challengeOut, err := svc.RespondToAuthChallenge(ctx, &cip.RespondToAuthChallengeInput{
			ChallengeName:      types.ChallengeNameTypePasswordVerifier,
			ChallengeResponses: responses,
			ClientId:           aws.String(srp.GetClientId()),
		})
		if err != nil {
			return "", humanError(err)
		}
		result = challengeOut.AuthenticationResult
	} else if initOut.ChallengeName != "" {
		return "", fmt.Errorf("unsupported auth challenge '%s'", initOut.ChallengeName)
	}

	if result == nil {
		return "", errors.New("authentication yielded no result")
	}

	log.Ctx(ctx).Debug().
		Str("username", creds.Username).
		Str("user_pool_id", creds.UserPoolID).
		Msg("cognito authentication succeeded")

	return pickToken(result, creds.TokenType)
}

func pickToken(result *types.AuthenticationResultType, tokenType core.TokenType) (string, error) {
	switch tokenType {
	case core.TokenTypeID:
		if result.IdToken == nil {
			return "", errors.New("authentication result carries no id token")
		}
		return *result.IdToken, nil
	case core.TokenTypeRawRequest:
		// A raw result is a JSON object, not a dot-joined token, so the
		// cache can never validate it: every raw_request call performs a
		// fresh handshake and overwrites the stored entry.
		raw, err := json.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("marshaling raw authentication result: %w", err)
		}
		return string(raw), nil
	default:
		if result.AccessToken == nil {
			return "", errors.New("authentication result carries no access token")
		}
		return *result.AccessToken, nil
	}
}

// humanError unwraps service errors to their bare message, e.g.
// "Incorrect username or password.". The message becomes the
// caller-visible result and the negative-cache payload, so it must not
// carry SDK wrapping noise.
func humanError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return errors.New(apiErr.ErrorMessage())
	}
	return err
}
