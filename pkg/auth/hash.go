package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyCredential = errors.New("credential cannot be empty")

type Hasher interface {
	Hash(credential string) (string, error)
	Compare(hash, credential string) bool
}

// BcryptHasher stores affiliate credentials as bcrypt hashes. Zero Cost means bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (b *BcryptHasher) Hash(credential string) (string, error) {
	if credential == "" {
		return "", ErrEmptyCredential
	}
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *BcryptHasher) Compare(hash, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential)) == nil
}
