package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// PackageHandler holds dependencies for package template operations.
type PackageHandler struct {
	service   services.PackageService
	validator *validator.Validate
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(service services.PackageService, validate *validator.Validate) *PackageHandler {
	return &PackageHandler{
		service:   service,
		validator: validate,
	}
}

// ListPackages godoc
//	@Summary		List package templates
//	@Description	Retrieves all purchasable package templates.
//	@Tags			packages
//	@Produce		json
//	@Success		200	{array}		dto.PackageResponse	"Packages"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("ListPackages: Error listing packages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve packages"})
		return
	}

	pkgResponses := make([]dto.PackageResponse, 0, len(packages))
	for _, pkg := range packages {
		pkgResponses = append(pkgResponses, MapPackageModelToResponse(pkg))
	}

	c.JSON(http.StatusOK, pkgResponses)
}

// GetPackageByID godoc
//	@Summary		Get a package template by ID
//	@Description	Retrieves a single package template.
//	@Tags			packages
//	@Produce		json
//	@Param			id	path		string				true	"Package ID"	Format(uuid)
//	@Success		200	{object}	dto.PackageResponse	"Package"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Package not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/packages/{id} [get]
func (h *PackageHandler) GetPackageByID(c *gin.Context) {
	pkgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID format"})
		return
	}

	pkg, err := h.service.GetByID(c.Request.Context(), pkgID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else {
			log.Printf("GetPackageByID: Error fetching package %s: %v", pkgID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve package"})
		}
		return
	}

	c.JSON(http.StatusOK, MapPackageModelToResponse(pkg))
}

// CreatePackage godoc
//	@Summary		Create a package template
//	@Description	Creates a new purchasable package template. Admin only.
//	@Tags			packages
//	@Accept			json
//	@Produce		json
//	@Param			package	body		dto.CreatePackageRequest	true	"Package data"
//	@Success		201		{object}	dto.PackageResponse			"Package created"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden - Not an admin"
//	@Failure		409		{object}	map[string]string			"Conflict - Free-trial package already exists"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/packages [post]
//	@Security		BearerAuth
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	pkg, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
		} else {
			log.Printf("CreatePackage: Error creating package: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapPackageModelToResponse(pkg))
}

// UpdatePackage godoc
//	@Summary		Update a package template
//	@Description	Updates a package template. Admin only. The free-trial price is immutable; past grants are never affected.
//	@Tags			packages
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Package ID"	Format(uuid)
//	@Param			package	body		dto.UpdatePackageRequest	true	"Fields to update"
//	@Success		200		{object}	dto.PackageResponse			"Package updated"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden - Not an admin"
//	@Failure		404		{object}	map[string]string			"Package not found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/packages/{id} [patch]
//	@Security		BearerAuth
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	pkgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID format"})
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = pkgID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	pkg, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
		} else {
			log.Printf("UpdatePackage: Error updating package %s: %v", pkgID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
		}
		return
	}

	c.JSON(http.StatusOK, MapPackageModelToResponse(pkg))
}

// DeletePackage godoc
//	@Summary		Delete a package template
//	@Description	Deletes a package template. Admin only. The free-trial package is never deletable; existing subscriptions keep their snapshots.
//	@Tags			packages
//	@Produce		json
//	@Param			id	path	string	true	"Package ID"	Format(uuid)
//	@Success		204	"Package deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not an admin or free-trial package"
//	@Failure		404	{object}	map[string]string	"Package not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/packages/{id} [delete]
//	@Security		BearerAuth
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	pkgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid package ID format"})
		return
	}

	req := dto.DeletePackageRequest{ID: pkgID}
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("DeletePackage: Error deleting package %s: %v", pkgID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
