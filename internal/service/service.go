package service

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/identity"
	"github.com/carson-networks/walletsync/internal/storage"
)

var (
	ErrOwnerNotFound      = errors.New("service: owner not found")
	ErrCredentialNotFound = errors.New("service: credential not found")
	// ErrNoCredential means no credential of the account could produce
	// an access token.
	ErrNoCredential = errors.New("service: no usable credential")
)

// RequiredScopes are the grants a credential needs for every sync stage.
var RequiredScopes = []string{
	"esi-wallet.read_corporation_wallets.v1",
	"esi-corporations.read_divisions.v1",
}

// Service holds all business logic services.
type Service struct {
	Owner      *OwnerService
	Credential *CredentialService
	Wallet     *WalletService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, tokens identity.TokenProvider, c clock.Clock, logger *logrus.Logger) *Service {
	return &Service{
		Owner:      NewOwnerService(store, c),
		Credential: NewCredentialService(store, tokens, c, logger),
		Wallet:     NewWalletService(store),
	}
}

// In returns services bound to the tables of one transaction.
func (s *Service) In(tables storage.Tables) *Service {
	return &Service{
		Owner:      s.Owner.In(tables),
		Credential: s.Credential.In(tables),
		Wallet:     s.Wallet.In(tables),
	}
}
