package api

import (
	"errors"
	"net/http"

	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/handler/httperr"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PackagesHandler struct {
	packages queries.PackageQueries
}

func NewPackagesHandler(packages queries.PackageQueries) *PackagesHandler {
	return &PackagesHandler{packages: packages}
}

// @Summary List travel packages
// @Description List the package catalog, optionally filtered by a search term
// @Tags packages
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} resdto.PackageListEnvelope
// @Router /packages [get]
func (h *PackagesHandler) List(c *gin.Context) {
	term := c.Query("q")
	var list []queries.TravelPackage
	if term != "" {
		list = h.packages.Search(term)
	} else {
		list = h.packages.List()
	}

	c.JSON(http.StatusOK, resdto.FromPackages(list))
}

// @Summary Search travel packages
// @Description Search the catalog by name, destination or description
// @Tags packages
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} resdto.PackageListEnvelope
// @Router /packages/search [get]
func (h *PackagesHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPackages(h.packages.Search(c.Query("q"))))
}

// @Summary Get travel package
// @Description Get a single catalog entry by slug
// @Tags packages
// @Produce json
// @Param slug path string true "Package slug"
// @Success 200 {object} resdto.PackageEnvelope
// @Failure 404 {object} httperr.Response
// @Router /packages/{slug} [get]
func (h *PackagesHandler) Get(c *gin.Context) {
	pkg, err := h.packages.Get(c.Param("slug"))
	if err != nil {
		if errors.Is(err, errs.ErrPackageNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Package not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.PackageEnvelope{
		Success: true,
		Package: resdto.FromPackage(*pkg),
	})
}
