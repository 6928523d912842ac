package api

import (
	"crypto/hmac"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
)

var (
	errTokenFormat    = errors.New("invalid token format")
	errTokenSignature = errors.New("invalid signature")
	errTokenExpired   = errors.New("token expired")
)

type sessionClaims struct {
	Sub  string `json:"sub"`  // email, also the profile owner
	Name string `json:"name"` // display name
	Iat  int64  `json:"iat"`
	Exp  int64  `json:"exp"`
}

var (
	devSecretOnce sync.Once
	devSecret     []byte
	devSecretErr  error
)

func getSessionSecret() ([]byte, error) {
	if secret := os.Getenv(constants.EnvSessionSecret); secret != "" {
		return []byte(secret), nil
	}
	// In-memory secret for development; sessions die with the process.
	devSecretOnce.Do(func() {
		devSecret = make([]byte, 32)
		if _, err := crand.Read(devSecret); err != nil {
			devSecretErr = errors.New("failed to generate dev session secret")
		}
	})
	return devSecret, devSecretErr
}

func b64url(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func signHS256(data string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(data))
	return b64url(mac.Sum(nil))
}

func createSessionToken(email, name string, ttl time.Duration) (string, error) {
	secret, err := getSessionSecret()
	if err != nil {
		return "", err
	}
	hdrJSON, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	now := time.Now().Unix()
	clJSON, err := json.Marshal(sessionClaims{Sub: email, Name: name, Iat: now, Exp: now + int64(ttl.Seconds())})
	if err != nil {
		return "", err
	}
	unsigned := fmt.Sprintf("%s.%s", b64url(hdrJSON), b64url(clJSON))
	return unsigned + "." + signHS256(unsigned, secret), nil
}

func parseAndValidateSession(token string) (*sessionClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errTokenFormat
	}
	secret, err := getSessionSecret()
	if err != nil {
		return nil, err
	}
	expected := signHS256(parts[0]+"."+parts[1], secret)
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return nil, errTokenSignature
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTokenFormat, err)
	}
	var claims sessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", errTokenFormat, err)
	}
	if claims.Sub == "" {
		return nil, errTokenFormat
	}
	if time.Now().Unix() > claims.Exp {
		return nil, errTokenExpired
	}
	return &claims, nil
}
