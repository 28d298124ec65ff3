package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-portal/internal/database"
	"rental-portal/internal/forms"
	"rental-portal/internal/models"
	"rental-portal/internal/validators"
)

// PropertyHandler serves the server-rendered Property screens
type PropertyHandler struct {
	db *database.GormDB
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(db *database.GormDB) *PropertyHandler {
	return &PropertyHandler{db: db}
}

// RegisterRoutes wires the property screens onto the router
func (h *PropertyHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.List)
	r.GET("/home/", h.Home)
	r.GET("/property/new/", h.CreateForm)
	r.POST("/property/new/", h.Create)
	r.GET("/property/:id/edit/", h.EditForm)
	r.POST("/property/:id/edit/", h.Edit)
	r.GET("/property/:id/delete/", h.DeleteConfirm)
	r.POST("/property/:id/delete/", h.Delete)
}

// Home renders the static landing view
func (h *PropertyHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

// List renders all properties, newest first
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.db.GetAllProperties()
	if err != nil {
		log.Printf("property list failed: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(http.StatusOK, "property_list.html", gin.H{
		"Properties": properties,
	})
}

// CreateForm renders an empty property form
func (h *PropertyHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, &forms.PropertyForm{}, nil, 0)
}

// Create persists a submitted property and redirects to the list. An invalid
// submission re-renders the form with field errors and persists nothing.
func (h *PropertyHandler) Create(c *gin.Context) {
	var form forms.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	var property models.Property
	if errs := h.saveFromForm(&form, &property, false); errs != nil {
		h.renderForm(c, http.StatusOK, &form, errs, 0)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// EditForm renders the form pre-populated from an existing property
func (h *PropertyHandler) EditForm(c *gin.Context) {
	property, ok := h.loadProperty(c)
	if !ok {
		return
	}
	h.renderForm(c, http.StatusOK, forms.FromProperty(property), nil, property.ID)
}

// Edit mutates an existing property with create semantics otherwise
func (h *PropertyHandler) Edit(c *gin.Context) {
	property, ok := h.loadProperty(c)
	if !ok {
		return
	}
	var form forms.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	if errs := h.saveFromForm(&form, property, true); errs != nil {
		h.renderForm(c, http.StatusOK, &form, errs, property.ID)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// DeleteConfirm renders the confirmation view without deleting anything
func (h *PropertyHandler) DeleteConfirm(c *gin.Context) {
	property, ok := h.loadProperty(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "property_confirm_delete.html", gin.H{
		"Property": property,
	})
}

// Delete removes the property, cascading to its contracts and payments, and
// redirects to the list
func (h *PropertyHandler) Delete(c *gin.Context) {
	property, ok := h.loadProperty(c)
	if !ok {
		return
	}
	if err := h.db.DeleteProperty(property.ID, models.DeleteReasonPropertyScreen); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.String(http.StatusNotFound, "property not found")
			return
		}
		log.Printf("property delete failed: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// saveFromForm applies the form onto property and persists it, returning field
// errors when the submission is invalid. No row is written on failure.
func (h *PropertyHandler) saveFromForm(form *forms.PropertyForm, property *models.Property, isEdit bool) validators.FieldErrors {
	if errs := form.Apply(property); len(errs) > 0 {
		// Surface the schema-level problems of the remaining fields as well,
		// so one round trip shows the full picture
		for field, msg := range validators.Property(property) {
			errs.Add(field, msg)
		}
		return errs
	}

	var err error
	if isEdit {
		err = h.db.UpdateProperty(property)
	} else {
		err = h.db.CreateProperty(property)
	}
	if err != nil {
		var fieldErrs validators.FieldErrors
		if errors.As(err, &fieldErrs) {
			return fieldErrs
		}
		log.Printf("property save failed: %v", err)
		return validators.FieldErrors{"__all__": "could not save the property"}
	}
	return nil
}

// renderForm renders the create/edit form with the owner picker populated
func (h *PropertyHandler) renderForm(c *gin.Context, status int, form *forms.PropertyForm, errs validators.FieldErrors, propertyID uint) {
	owners, err := h.db.GetAllOwners()
	if err != nil {
		log.Printf("owner list failed: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	c.HTML(status, "property_form.html", gin.H{
		"Form":       form,
		"Errors":     errs,
		"Owners":     owners,
		"IsEdit":     propertyID != 0,
		"PropertyID": propertyID,
	})
}

// loadProperty resolves the :id path parameter, answering 404 when it does not
// name an existing property
func (h *PropertyHandler) loadProperty(c *gin.Context) (*models.Property, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "property not found")
		return nil, false
	}
	property, err := h.db.GetPropertyByID(uint(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.String(http.StatusNotFound, "property not found")
			return nil, false
		}
		log.Printf("property load failed: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return property, true
}
