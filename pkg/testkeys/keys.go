// Package testkeys provides PASETO key pairs for tests.
// These keys must never be used in production.
package testkeys

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Hardcoded ed25519 pair, the private key carries the public key in its last 32 bytes
const (
	HardcodedPrivateKeyB64 = "UayDa4OMDpm3CvIT+iSC39iDyPlsui0pNQYDEZ1pbo1LsIrO4p/aVuCBWz6LiYvzj9pc+gn0gLwRd0CoHV+nxw=="
	HardcodedPublicKeyB64  = "S7CKzuKf2lbggVs+i4mL84/aXPoJ9IC8EXdAqB1fp8c="
)

// TestKeys holds a key pair in raw and base64 form
type TestKeys struct {
	PrivateKeyBytes []byte
	PublicKeyBytes  []byte
	PrivateKeyB64   string
	PublicKeyB64    string
}

// GetTestKeys returns the hardcoded keys base64 encoded
func GetTestKeys() (string, string) {
	return HardcodedPrivateKeyB64, HardcodedPublicKeyB64
}

// GetTestKeysBytes returns the hardcoded keys as byte slices
func GetTestKeysBytes() ([]byte, []byte, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(HardcodedPrivateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(HardcodedPublicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode public key: %w", err)
	}

	return privateKeyBytes, publicKeyBytes, nil
}

// GenerateValidPasetoKeys generates a fresh ed25519 pair
func GenerateValidPasetoKeys() (*TestKeys, error) {
	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key pair: %w", err)
	}

	return &TestKeys{
		PrivateKeyBytes: privKey,
		PublicKeyBytes:  pubKey,
		PrivateKeyB64:   base64.StdEncoding.EncodeToString(privKey),
		PublicKeyB64:    base64.StdEncoding.EncodeToString(pubKey),
	}, nil
}
