package infra

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/amirasaad/backoffice/infra/repository/account"
	apikeyrepo "github.com/amirasaad/backoffice/infra/repository/apikey"
	conversationrepo "github.com/amirasaad/backoffice/infra/repository/conversation"
	reportrepo "github.com/amirasaad/backoffice/infra/repository/report"
	transactionrepo "github.com/amirasaad/backoffice/infra/repository/transaction"
	userrepo "github.com/amirasaad/backoffice/infra/repository/user"
	"github.com/amirasaad/backoffice/pkg/repository"
	"github.com/amirasaad/backoffice/pkg/repository/account"
	"github.com/amirasaad/backoffice/pkg/repository/apikey"
	"github.com/amirasaad/backoffice/pkg/repository/conversation"
	"github.com/amirasaad/backoffice/pkg/repository/report"
	"github.com/amirasaad/backoffice/pkg/repository/transaction"
	"github.com/amirasaad/backoffice/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db:           db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			repository.TypeOf[user.Repository]():                 func(db *gorm.DB) any { return userrepo.New(db) },
			repository.TypeOf[apikey.Repository]():               func(db *gorm.DB) any { return apikeyrepo.New(db) },
			repository.TypeOf[account.Repository]():              func(db *gorm.DB) any { return accountrepo.New(db) },
			repository.TypeOf[transaction.Repository]():          func(db *gorm.DB) any { return transactionrepo.New(db) },
			repository.TypeOf[transaction.IPNRepository]():       func(db *gorm.DB) any { return transactionrepo.NewIPN(db) },
			repository.TypeOf[conversation.Repository]():         func(db *gorm.DB) any { return conversationrepo.New(db) },
			repository.TypeOf[conversation.MessageRepository](): func(db *gorm.DB) any { return conversationrepo.NewMessages(db) },
			repository.TypeOf[report.Repository]():               func(db *gorm.DB) any { return reportrepo.New(db) },
		},
	}
}

// Do runs fn in a transaction boundary, providing a UoW bound to the transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository builds the requested repository on the transaction session,
// or on the plain connection when called outside Do.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
