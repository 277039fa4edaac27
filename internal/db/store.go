// exposes a Store interface that is passed to API modules
package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// content catalog functions
	ListCatalog(contentType *model.ContentType) ([]model.CatalogItem, error)
	GetCatalogItem(id int) (model.CatalogItem, error)
	ResolveContentName(ctx context.Context, contentType model.ContentType, contentID int) (string, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

// NewStore wraps the given connection; a nil argument falls back to the
// package-level DB opened by Init.
func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}
