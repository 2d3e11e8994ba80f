package jwks

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newKeyServer(t *testing.T, keys map[string]*rsa.PublicKey, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/jwks.json", func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		var document struct {
			Keys []map[string]string `json:"keys"`
		}
		for kid, key := range keys {
			document.Keys = append(document.Keys, map[string]string{
				"kid": kid,
				"kty": "RSA",
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(document))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func tokenWithKid(kid string) *jwt.Token {
	token := jwt.New(jwt.SigningMethodRS256)
	token.Header["kid"] = kid
	return token
}

func TestKeyfunc_ResolvesPublishedKey(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newKeyServer(t, map[string]*rsa.PublicKey{"key-1": &privateKey.PublicKey}, nil)

	keySet := New(server.URL)
	resolved, err := keySet.Keyfunc(tokenWithKid("key-1"))
	require.NoError(t, err)

	publicKey, ok := resolved.(*rsa.PublicKey)
	require.True(t, ok)
	require.Zero(t, publicKey.N.Cmp(privateKey.PublicKey.N))
	require.Equal(t, privateKey.PublicKey.E, publicKey.E)
}

func TestKeyfunc_CachesAcrossCalls(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	var hits atomic.Int32
	server := newKeyServer(t, map[string]*rsa.PublicKey{"key-1": &privateKey.PublicKey}, &hits)

	keySet := New(server.URL)
	for i := 0; i < 3; i++ {
		_, err := keySet.Keyfunc(tokenWithKid("key-1"))
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), hits.Load())
}

func TestKeyfunc_RefetchesOnUnknownKid(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	var hits atomic.Int32
	server := newKeyServer(t, map[string]*rsa.PublicKey{"key-1": &privateKey.PublicKey}, &hits)

	keySet := New(server.URL)
	require.NoError(t, keySet.Prefetch(context.Background()))

	_, err = keySet.Keyfunc(tokenWithKid("rotated-key"))
	require.Error(t, err)
	require.Equal(t, int32(2), hits.Load(), "an unknown kid triggers exactly one refetch")
}

func TestKeyfunc_UnreachableEndpointReportsKeysUnavailable(t *testing.T) {
	downServer := httptest.NewServer(http.NotFoundHandler())
	downServer.Close()

	keySet := New(downServer.URL)
	_, err := keySet.Keyfunc(tokenWithKid("key-1"))
	require.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestKeyfunc_UnknownKidAfterRefetchIsNotKeysUnavailable(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newKeyServer(t, map[string]*rsa.PublicKey{"key-1": &privateKey.PublicKey}, nil)

	keySet := New(server.URL)
	_, err = keySet.Keyfunc(tokenWithKid("rotated-key"))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrKeyUnavailable)
}

func TestKeyfuncWithContext_CancelledRequest(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newKeyServer(t, map[string]*rsa.PublicKey{"key-1": &privateKey.PublicKey}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	keySet := New(server.URL)
	_, err = keySet.KeyfuncWithContext(ctx)(tokenWithKid("key-1"))
	require.ErrorIs(t, err, ErrKeyUnavailable)
}

func TestKeyfunc_MissingKidHeader(t *testing.T) {
	keySet := New("https://cognito-idp.eu-central-1.amazonaws.com/eu-central-1_AbCdEfGhI")

	token := jwt.New(jwt.SigningMethodRS256)
	_, err := keySet.Keyfunc(token)
	require.Error(t, err)
}

func TestPrefetch_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	keySet := New(server.URL)
	require.Error(t, keySet.Prefetch(context.Background()))
}

func TestIssuer(t *testing.T) {
	issuer := "https://cognito-idp.eu-central-1.amazonaws.com/eu-central-1_AbCdEfGhI"
	require.Equal(t, issuer, New(issuer).Issuer())
}
