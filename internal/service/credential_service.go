package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/identity"
	"github.com/carson-networks/walletsync/internal/storage"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// CredentialService rotates the credentials used to read owner wallets.
type CredentialService struct {
	tables storage.Tables
	tokens identity.TokenProvider
	clock  clock.Clock
	logger *logrus.Logger
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(store *storage.Storage, tokens identity.TokenProvider, c clock.Clock, logger *logrus.Logger) *CredentialService {
	return &CredentialService{tables: store.Tables, tokens: tokens, clock: c, logger: logger}
}

// In returns a service bound to tables. A token provider backed by the
// token table is rebound to tables.Tokens as well.
func (s *CredentialService) In(tables storage.Tables) *CredentialService {
	tokens := s.tokens
	if bound, ok := tokens.(identity.TableBound); ok && tables.Tokens != nil {
		tokens = bound.In(tables.Tokens)
	}
	return &CredentialService{tables: tables, tokens: tokens, clock: s.clock, logger: s.logger}
}

// SelectCredential walks the account's valid credentials least recently
// used first and returns the first one that yields an access token.
// Credentials whose identity has no usable token are invalidated.
// Transient token failures skip the credential for this call only.
func (s *CredentialService) SelectCredential(ctx context.Context, accountID int64) (*Selection, error) {
	rows, err := s.tables.Credentials.ListValidForAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}

	for _, row := range rows {
		fields := logrus.Fields{
			"accountID":    accountID,
			"credentialID": row.ID.String(),
			"identityID":   row.IdentityID,
		}

		token, err := s.tokens.AccessToken(ctx, row.IdentityID, RequiredScopes)
		if errors.Is(err, identity.ErrNoValidToken) {
			s.logger.WithFields(fields).Warn("Credential.Invalidated")
			if err := s.tables.Credentials.SetValid(ctx, row.ID, false); err != nil {
				return nil, fmt.Errorf("invalidate credential: %w", err)
			}
			continue
		}
		if err != nil {
			s.logger.WithFields(fields).WithError(err).Info("Credential.Skipped")
			continue
		}

		return &Selection{Credential: credentialFromStorage(row), AccessToken: token}, nil
	}
	return nil, ErrNoCredential
}

// Resume fetches a fresh access token for a credential already chosen for
// a sync chain. A credential whose identity lost its token is invalidated.
func (s *CredentialService) Resume(ctx context.Context, credentialID uuid.UUID) (*Selection, error) {
	row, err := s.tables.Credentials.FindByID(ctx, credentialID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, err
	}
	if !row.IsValid {
		return nil, ErrNoCredential
	}

	token, err := s.tokens.AccessToken(ctx, row.IdentityID, RequiredScopes)
	if errors.Is(err, identity.ErrNoValidToken) {
		s.logger.WithFields(logrus.Fields{
			"credentialID": row.ID.String(),
			"identityID":   row.IdentityID,
		}).Warn("Credential.Invalidated")
		if err := s.tables.Credentials.SetValid(ctx, row.ID, false); err != nil {
			return nil, fmt.Errorf("invalidate credential: %w", err)
		}
		return nil, fmt.Errorf("%w: %w", ErrNoCredential, err)
	}
	if err != nil {
		return nil, err
	}
	return &Selection{Credential: credentialFromStorage(row), AccessToken: token}, nil
}

// MarkUsed bumps last_used for every credential bound to identityID.
// Failures are logged and never returned.
func (s *CredentialService) MarkUsed(ctx context.Context, identityID int64) {
	if _, err := s.tables.Credentials.MarkUsedByIdentity(ctx, identityID, s.clock.Now()); err != nil {
		s.logger.WithField("identityID", identityID).WithError(err).Error("Credential.MarkUsed")
	}
}

// Reactivate marks every credential of identityID valid again.
func (s *CredentialService) Reactivate(ctx context.Context, identityID int64) (int64, error) {
	count, err := s.tables.Credentials.SetValidByIdentity(ctx, identityID, true)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, ErrCredentialNotFound
	}
	return count, nil
}

// Register binds identityID to the owner of accountID, creating the owner
// on first sight. Registering an existing pair is a no-op.
func (s *CredentialService) Register(ctx context.Context, accountID, identityID int64) (*Credential, bool, error) {
	now := s.clock.Now()
	owner, ownerCreated, err := s.tables.Owners.GetOrCreate(ctx, accountID, now)
	if err != nil {
		return nil, false, fmt.Errorf("owner %d: %w", accountID, err)
	}

	row, _, err := s.tables.Credentials.Insert(ctx, &sqlconfig.CredentialCreate{
		OwnerID:    owner.ID,
		IdentityID: identityID,
		CreatedAt:  now,
	})
	if err != nil {
		return nil, false, fmt.Errorf("credential: %w", err)
	}

	credential := credentialFromStorage(row)
	return &credential, ownerCreated, nil
}
