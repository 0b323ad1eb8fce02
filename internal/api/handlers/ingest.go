package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"aurora-grid/internal/api/models"
	"aurora-grid/internal/ingest"
	"aurora-grid/internal/warehouse"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IngestHandler accepts CSV dataset uploads.
type IngestHandler struct {
	store  warehouse.Store
	logger *zap.Logger
}

func NewIngestHandler(store warehouse.Store, logger *zap.Logger) *IngestHandler {
	return &IngestHandler{store: store, logger: logger}
}

// Upload handles POST /ingest/:name with a multipart "file" field.
// The upload replaces any previous dataset of the same name.
func (h *IngestHandler) Upload(c *gin.Context) {
	name := c.Param("name")
	if !ingest.KnownDataset(name) {
		respondError(c, http.StatusBadRequest, "UNKNOWN_DATASET",
			fmt.Sprintf("unknown dataset %q, expected one of %v", name, ingest.DatasetNames))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field \"file\" is required")
		return
	}
	f, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "BAD_UPLOAD", err.Error())
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		respondError(c, http.StatusBadRequest, "BAD_UPLOAD", err.Error())
		return
	}

	// Price uploads get a full parse so schema errors surface at ingest
	// time instead of at the first forecast.
	var rows int
	if name == "price" {
		obs, err := ingest.ParsePrices(bytes.NewReader(raw))
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_CSV", err.Error())
			return
		}
		rows = len(obs)
	} else {
		rows, err = ingest.CountRows(bytes.NewReader(raw))
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_CSV", err.Error())
			return
		}
	}

	if err := h.store.WriteDataset(name, raw); err != nil {
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	id := uuid.NewString()
	h.logger.Info("dataset ingested",
		zap.String("dataset", name),
		zap.Int("rows", rows),
		zap.String("id", id),
	)
	c.JSON(http.StatusOK, models.IngestResponse{ID: id, Dataset: name, Rows: rows})
}

// List handles GET /datasets.
func (h *IngestHandler) List(c *gin.Context) {
	infos, err := h.store.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"datasets": infos})
}
