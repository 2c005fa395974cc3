package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/backoffice/pkg/domain"
	"gorm.io/gorm"
)

// gormErrors lists the driver errors (translated by the postgres dialector)
// that carry domain meaning, in lookup order.
var gormErrors = []struct {
	gorm   error
	domain error
}{
	{gorm.ErrRecordNotFound, domain.ErrNotFound},
	// unique indexes: usernames, key prefixes, gateway payment ids, IPN resources
	{gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
	// a deposit or IPN event naming an account that does not exist
	{gorm.ErrForeignKeyViolated, domain.ErrValidation},
	{gorm.ErrCheckConstraintViolated, domain.ErrValidation},
}

// MapGormErrorToDomain translates err into a domain error so services never
// import gorm. Not found is returned bare; constraint violations keep the
// driver message for logs. Anything unrecognized is returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range gormErrors {
		if !errors.Is(err, m.gorm) {
			continue
		}
		if m.domain == domain.ErrNotFound {
			return domain.ErrNotFound
		}
		return fmt.Errorf("%w: %v", m.domain, err)
	}
	return err
}

// WrapError runs a gorm operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(model).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
