package jwks

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

// ErrKeyUnavailable marks a key resolution that failed because the JWKS
// document could not be fetched, as opposed to a token signed with a key the
// pool does not publish. Callers may fall back to provider-side verification.
var ErrKeyUnavailable = errors.New("signing keys unavailable")

// KeySet resolves RS256 verification keys from an issuer's published JWKS
// document. Fetched keys are cached by key id; unknown kids trigger a
// refetch, so rotated pool keys are picked up without a restart.
type KeySet struct {
	issuer     string
	url        string
	httpClient *http.Client
	keys       *cache.Cache
}

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

func New(issuer string) *KeySet {
	return &KeySet{
		issuer:     issuer,
		url:        issuer + "/.well-known/jwks.json",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		keys:       cache.New(24*time.Hour, time.Hour),
	}
}

func (k *KeySet) Issuer() string {
	return k.issuer
}

// Prefetch loads the key set eagerly, for startup warm-up.
func (k *KeySet) Prefetch(ctx context.Context) error {
	return k.fetch(ctx)
}

// Keyfunc is the jwt.Keyfunc resolving the token's kid to an RSA public key.
func (k *KeySet) Keyfunc(token *jwt.Token) (interface{}, error) {
	return k.resolve(context.Background(), token)
}

// KeyfuncWithContext binds key resolution to ctx, so a refetch triggered by
// an unseen kid is cancelled together with the request.
func (k *KeySet) KeyfuncWithContext(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		return k.resolve(ctx, token)
	}
}

func (k *KeySet) resolve(ctx context.Context, token *jwt.Token) (interface{}, error) {
	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, fmt.Errorf("token has no kid header")
	}

	if key, found := k.keys.Get(kid); found {
		return key.(*rsa.PublicKey), nil
	}

	if err := k.fetch(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyUnavailable, err)
	}

	key, found := k.keys.Get(kid)
	if !found {
		return nil, fmt.Errorf("no key found for kid %q", kid)
	}
	return key.(*rsa.PublicKey), nil
}

func (k *KeySet) fetch(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		return err
	}

	res, err := k.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching jwks from %s: unexpected status %d", k.url, res.StatusCode)
	}

	var keySet jsonWebKeySet
	if err := json.NewDecoder(res.Body).Decode(&keySet); err != nil {
		return err
	}

	for _, key := range keySet.Keys {
		if key.Kty != "RSA" {
			continue
		}
		publicKey, err := toRSAPublicKey(key)
		if err != nil {
			return err
		}
		k.keys.Set(key.Kid, publicKey, cache.DefaultExpiration)
	}
	return nil
}

func toRSAPublicKey(key jsonWebKey) (*rsa.PublicKey, error) {
	modulus, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, fmt.Errorf("decoding modulus of key %q: %w", key.Kid, err)
	}
	exponent, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, fmt.Errorf("decoding exponent of key %q: %w", key.Kid, err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(modulus),
		E: int(new(big.Int).SetBytes(exponent).Int64()),
	}, nil
}
