package retry

import (
	"time"

	"akurat-backend/pkg/logger"
)

// RetryConfig holds the configuration for retry behavior
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts before giving up
	MaxAttempts int
	// Delay is the initial delay between attempts
	Delay time.Duration
	// MaxDelay is the maximum delay between attempts
	MaxDelay time.Duration
	// Multiplier is the factor by which the delay grows between attempts
	Multiplier float64
	// RetryableErr decides whether an error is worth another attempt
	RetryableErr func(error) bool
}

// DefaultRetryConfig provides sensible default values
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:  5,
		Delay:        time.Second,
		MaxDelay:     time.Second * 30,
		Multiplier:   2.0,
		RetryableErr: func(err error) bool { return true },
	}
}

// WithRetry wraps fn with retry logic. It is used for startup work only
// (AWS configuration load, JWKS warm-up); request handlers never retry.
func WithRetry[T any](fn func() (T, error), log *logger.Logger, config *RetryConfig) func() (T, error) {
	if config == nil {
		config = DefaultRetryConfig()
	}

	return func() (T, error) {
		var lastErr error
		currentDelay := config.Delay

		for attempt := 0; attempt < config.MaxAttempts; attempt++ {
			result, err := fn()
			if err == nil {
				return result, nil
			}

			lastErr = err
			if !config.RetryableErr(err) {
				var zero T
				return zero, err
			}

			if attempt < config.MaxAttempts-1 {
				log.PrintfWarning("Attempt %d failed: %s. Retrying in %.0fs", attempt+1, err, currentDelay.Seconds())
				time.Sleep(currentDelay)
				currentDelay = time.Duration(float64(currentDelay) * config.Multiplier)
				if currentDelay > config.MaxDelay {
					currentDelay = config.MaxDelay
				}
			}
		}

		var zero T
		log.PrintfError("Reached max retry attempts: %s", lastErr)
		return zero, lastErr
	}
}
