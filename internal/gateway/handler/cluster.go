package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kart-io/mongogate/internal/cluster"
	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/internal/pkg/httputils"
	"github.com/kart-io/mongogate/pkg/errors"
)

// ClusterHandler proxies administrative operations to target clusters.
// All routes require an authenticated caller; the connection string comes
// from the request body and may be any cluster, saved or not.
type ClusterHandler struct {
	exec cluster.Executor
}

// NewClusterHandler creates a ClusterHandler.
func NewClusterHandler(exec cluster.Executor) *ClusterHandler {
	return &ClusterHandler{exec: exec}
}

// Databases handles POST /v1/clusters/databases.
func (h *ClusterHandler) Databases(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var req model.ClusterRequest
	if !bindJSON(c, &req) {
		return
	}

	names, err := h.exec.ListDatabases(c.Request.Context(), req.ConnectionString)
	httputils.WriteResponse(c, gin.H{"databases": names}, err)
}

// Collections handles POST /v1/clusters/collections.
func (h *ClusterHandler) Collections(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var req model.CollectionsRequest
	if !bindJSON(c, &req) {
		return
	}

	names, err := h.exec.ListCollections(c.Request.Context(), req.ConnectionString, req.Database)
	httputils.WriteResponse(c, gin.H{"collections": names}, err)
}

// Documents handles POST /v1/clusters/documents/query.
func (h *ClusterHandler) Documents(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var req model.DocumentsRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := h.exec.Documents(c.Request.Context(), &req)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WritePage(c, page.Documents, page.Total, page.Page, page.Limit)
}

// Search handles POST /v1/clusters/documents/search.
func (h *ClusterHandler) Search(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var req model.SearchRequest
	if !bindJSON(c, &req) {
		return
	}

	page, err := h.exec.Search(c.Request.Context(), &req)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WritePage(c, page.Documents, page.Total, page.Page, page.Limit)
}

// AllDocuments handles POST /v1/clusters/documents/all. The result is
// capped server-side; callers needing more must paginate.
func (h *ClusterHandler) AllDocuments(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var req struct {
		model.CollectionsRequest
		Collection string `json:"collection" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}

	docs, err := h.exec.AllDocuments(c.Request.Context(), &req.CollectionsRequest, req.Collection)
	httputils.WriteResponse(c, gin.H{"documents": docs, "count": len(docs)}, err)
}

// Insert handles POST /v1/clusters/documents.
func (h *ClusterHandler) Insert(c *gin.Context) {
	if _, ok := identity(c); !ok {
		return
	}
	var req model.InsertDocumentRequest
	if !bindJSON(c, &req) {
		return
	}
	if len(req.Document) == 0 {
		httputils.WriteError(c, errors.ErrInvalidParam.WithMessage("document is required"))
		return
	}

	insertedID, err := h.exec.Insert(c.Request.Context(), &req)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}
	httputils.WriteCreated(c, gin.H{"inserted_id": insertedID})
}
