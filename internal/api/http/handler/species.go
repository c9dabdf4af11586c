package handler

import (
	"net/http"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/response"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// Species serves the read-only species catalog.
type Species struct {
	catalog model.SpeciesCatalog
	logger  *logger.Logger
}

func NewSpecies(catalog model.SpeciesCatalog, logger *logger.Logger) *Species {
	return &Species{catalog: catalog, logger: logger}
}

func (h *Species) List(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, h.catalog.All())
}

func (h *Species) Get(w http.ResponseWriter, r *http.Request) {
	label := stringParam(r, "class_name")
	s, ok := h.catalog.Lookup(label)
	if !ok {
		handleError(w, r, h.logger, apierror.NewErrSpeciesNotFound(label))
		return
	}
	response.JSON(w, http.StatusOK, s)
}
