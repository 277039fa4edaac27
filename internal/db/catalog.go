package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

// ListCatalog returns assignable content entries, optionally filtered to one
// content type.
func (s *pgStore) ListCatalog(contentType *model.ContentType) ([]model.CatalogItem, error) {
	var all []model.CatalogItem
	if contentType == nil {
		const q = `
		SELECT id, name, type, url, created_at
		  FROM catalog_items
		 ORDER BY id;`
		if err := s.db.Select(&all, q); err != nil {
			log.Error().Err(err).Msg("ListCatalog failed")
			return nil, err
		}
		return all, nil
	}

	const q = `
	SELECT id, name, type, url, created_at
	  FROM catalog_items
	 WHERE type = $1
	 ORDER BY id;`
	if err := s.db.Select(&all, q, *contentType); err != nil {
		log.Error().Err(err).Str("type", string(*contentType)).Msg("ListCatalog failed")
		return nil, err
	}
	return all, nil
}

func (s *pgStore) GetCatalogItem(id int) (model.CatalogItem, error) {
	var item model.CatalogItem
	const q = `
	SELECT id, name, type, url, created_at
	  FROM catalog_items
	 WHERE id = $1;`
	err := s.db.Get(&item, q, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("item_id", id).Msg("GetCatalogItem failed")
	}
	return item, err
}

// ResolveContentName looks up the display name for a content reference. The
// type is part of the lookup so a media id never resolves against a
// composition and vice versa.
func (s *pgStore) ResolveContentName(ctx context.Context, contentType model.ContentType, contentID int) (string, error) {
	var name string
	const q = `
	SELECT name
	  FROM catalog_items
	 WHERE id = $1 AND type = $2;`
	if err := s.db.GetContext(ctx, &name, q, contentID, contentType); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", sql.ErrNoRows
		}
		log.Error().Err(err).Int("item_id", contentID).Msg("ResolveContentName failed")
		return "", err
	}
	return name, nil
}
