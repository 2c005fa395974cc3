package repository

import (
	"context"
	"fmt"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// GetRepository lives on the UnitOfWork so that every repository used inside
// Do shares the same transaction.
//
//	repo, err := repository.Repo[user.Repository](uow)
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an error,
	// the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction, or to the plain connection outside Do.
	GetRepository(repoType reflect.Type) (any, error)
}

// TypeOf returns the registry key of the repository interface T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Repo fetches the repository interface T from uow.
func Repo[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoAny, err := uow.GetRepository(TypeOf[T]())
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
