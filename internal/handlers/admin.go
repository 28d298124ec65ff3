package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-portal/internal/admin"
	"rental-portal/internal/database"
	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// AdminHandler is the administrative record browser: registry-driven
// list/search/filter plus editing over every registered entity type
type AdminHandler struct {
	db *database.GormDB
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *database.GormDB) *AdminHandler {
	return &AdminHandler{db: db}
}

// RegisterRoutes wires the record browser onto a router group
func (h *AdminHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.Index)
	g.GET("/stats", h.Stats)
	g.GET("/deletions", h.Deletions)
	g.GET("/:entity", h.List)
	g.GET("/:entity/meta", h.Meta)
	g.GET("/:entity/:id", h.Get)
	g.POST("/:entity", h.Create)
	g.PUT("/:entity/:id", h.Update)
	g.DELETE("/:entity/:id", h.Delete)
}

// Index lists the registered entity types
func (h *AdminHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entities": admin.Entities()})
}

// Meta returns the registered descriptor for an entity
func (h *AdminHandler) Meta(c *gin.Context) {
	desc, ok := admin.Lookup(c.Param("entity"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity"})
		return
	}
	c.JSON(http.StatusOK, desc)
}

// Stats returns record counts per entity
func (h *AdminHandler) Stats(c *gin.Context) {
	counts, err := h.db.CountRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// Deletions returns recent deletion audit rows
func (h *AdminHandler) Deletions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	logs, err := h.db.GetRecentDeleteLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletions": logs, "count": len(logs)})
}

// List returns entity rows in the registered default ordering. The q parameter
// searches the registered search fields; registered filter fields are accepted
// as query parameters; limit/offset page through the results.
func (h *AdminHandler) List(c *gin.Context) {
	desc, ok := admin.Lookup(c.Param("entity"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity"})
		return
	}

	q := h.db.DB().Table(desc.Table).Order(desc.DefaultOrder)

	if search := c.Query("q"); search != "" && len(desc.SearchFields) > 0 {
		pattern := "%" + search + "%"
		clause := ""
		args := make([]interface{}, 0, len(desc.SearchFields))
		for i, field := range desc.SearchFields {
			if i > 0 {
				clause += " OR "
			}
			clause += field + " LIKE ?"
			args = append(args, pattern)
		}
		q = q.Where(clause, args...)
	}

	for _, field := range desc.FilterFields {
		value := c.Query(field)
		if value == "" {
			continue
		}
		if admin.IsBoolFilter(field) {
			b, err := strconv.ParseBool(value)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": field + " must be a boolean"})
				return
			}
			q = q.Where(field+" = ?", b)
		} else {
			q = q.Where(field+" = ?", value)
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			q = q.Limit(limit)
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			q = q.Offset(offset)
		}
	}

	var rows []map[string]interface{}
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"entity": desc.Entity,
		"rows":   rows,
		"count":  len(rows),
	})
}

// Get returns one record by id
func (h *AdminHandler) Get(c *gin.Context) {
	entity, id, ok := h.entityID(c)
	if !ok {
		return
	}

	var record interface{}
	var err error
	switch entity {
	case "owners":
		record, err = h.db.GetOwnerByID(id)
	case "properties":
		record, err = h.db.GetPropertyByID(id)
	case "tenants":
		record, err = h.db.GetTenantByID(id)
	case "contracts":
		record, err = h.db.GetContractByID(id)
	case "payments":
		record, err = h.db.GetPaymentByID(id)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity"})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create inserts one record, validation first
func (h *AdminHandler) Create(c *gin.Context) {
	entity := c.Param("entity")
	record, err := h.bindAndSave(c, entity, 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update mutates one record by id, validation first
func (h *AdminHandler) Update(c *gin.Context) {
	entity, id, ok := h.entityID(c)
	if !ok {
		return
	}
	record, err := h.bindAndSave(c, entity, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes one record by id, cascading to its dependents
func (h *AdminHandler) Delete(c *gin.Context) {
	entity, id, ok := h.entityID(c)
	if !ok {
		return
	}

	var err error
	switch entity {
	case "owners":
		err = h.db.DeleteOwner(id, models.DeleteReasonAdminBrowser)
	case "properties":
		err = h.db.DeleteProperty(id, models.DeleteReasonAdminBrowser)
	case "tenants":
		err = h.db.DeleteTenant(id, models.DeleteReasonAdminBrowser)
	case "contracts":
		err = h.db.DeleteContract(id, models.DeleteReasonAdminBrowser)
	case "payments":
		err = h.db.DeletePayment(id, models.DeleteReasonAdminBrowser)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity"})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// bindAndSave binds the request body to the entity's model and persists it.
// id 0 means insert; anything else updates that record.
func (h *AdminHandler) bindAndSave(c *gin.Context, entity string, id uint) (interface{}, error) {
	switch entity {
	case "owners":
		var owner models.Owner
		if err := c.ShouldBindJSON(&owner); err != nil {
			return nil, validators.FieldErrors{"__all__": err.Error()}
		}
		owner.ID = id
		if id == 0 {
			return &owner, h.db.CreateOwner(&owner)
		}
		return &owner, h.db.UpdateOwner(&owner)
	case "properties":
		var property models.Property
		if err := c.ShouldBindJSON(&property); err != nil {
			return nil, validators.FieldErrors{"__all__": err.Error()}
		}
		property.ID = id
		if id == 0 {
			return &property, h.db.CreateProperty(&property)
		}
		return &property, h.db.UpdateProperty(&property)
	case "tenants":
		var tenant models.Tenant
		if err := c.ShouldBindJSON(&tenant); err != nil {
			return nil, validators.FieldErrors{"__all__": err.Error()}
		}
		tenant.ID = id
		if id == 0 {
			return &tenant, h.db.CreateTenant(&tenant)
		}
		return &tenant, h.db.UpdateTenant(&tenant)
	case "contracts":
		var contract models.Contract
		if err := c.ShouldBindJSON(&contract); err != nil {
			return nil, validators.FieldErrors{"__all__": err.Error()}
		}
		contract.ID = id
		if id == 0 {
			return &contract, h.db.CreateContract(&contract)
		}
		return &contract, h.db.UpdateContract(&contract)
	case "payments":
		var payment models.Payment
		if err := c.ShouldBindJSON(&payment); err != nil {
			return nil, validators.FieldErrors{"__all__": err.Error()}
		}
		payment.ID = id
		if id == 0 {
			return &payment, h.db.CreatePayment(&payment)
		}
		return &payment, h.db.UpdatePayment(&payment)
	}
	return nil, database.ErrNotFound
}

// entityID resolves the entity and :id path parameters
func (h *AdminHandler) entityID(c *gin.Context) (string, uint, bool) {
	entity := c.Param("entity")
	if _, ok := admin.Lookup(entity); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown entity"})
		return "", 0, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return "", 0, false
	}
	return entity, uint(id), true
}

// writeError maps the error taxonomy onto responses: field errors are 400 with
// the field map, missing ids are 404, anything else is a data-integrity defect
func (h *AdminHandler) writeError(c *gin.Context, err error) {
	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}
	log.Printf("admin operation failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
