package ports

import "context"

type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (score float64, passed bool, err error)
}
