package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lumen-Media-LLC/dayline/internal/db"
	"github.com/Lumen-Media-LLC/dayline/internal/http/api"
	"github.com/Lumen-Media-LLC/dayline/internal/http/api/admin/control/packets"
	"github.com/Lumen-Media-LLC/dayline/internal/model"
)

// CatalogController serves the assignable content catalog the scheduler
// resolves slot content from.
type CatalogController struct {
	store db.Store
}

func NewCatalogController(store db.Store) *CatalogController {
	return &CatalogController{store: store}
}

func CatalogModule(store db.Store) api.Module {
	ctl := NewCatalogController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/catalog", ctl.listCatalog)
		c.GET("/catalog/:id", ctl.getCatalogItem)
	})
}

func (cc *CatalogController) listCatalog(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var query packets.CatalogQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	var filter *model.ContentType
	if query.Type != "" {
		ct := model.ContentType(query.Type)
		filter = &ct
	}

	items, err := cc.store.ListCatalog(filter)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list catalog"}
	}

	response := make([]packets.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		response = append(response, packets.NewCatalogItemResponse(it))
	}
	return response, nil
}

func (cc *CatalogController) getCatalogItem(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	item, err := cc.store.GetCatalogItem(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "catalog item not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load catalog item"}
	}
	return packets.NewCatalogItemResponse(item), nil
}
