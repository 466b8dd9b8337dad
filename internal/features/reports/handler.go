package reports

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/elyebdri/maurifind/internal/middleware"
	"github.com/elyebdri/maurifind/internal/pkg/cloudinary"
	"github.com/elyebdri/maurifind/internal/pkg/i18n"
	"github.com/elyebdri/maurifind/internal/pkg/pagination"
	"github.com/elyebdri/maurifind/internal/pkg/response"
	errs "github.com/elyebdri/maurifind/pkg/errors"
)

// Store is the report persistence surface the handlers depend on.
// *Repository is the production implementation.
type Store interface {
	Create(ctx context.Context, report *Report) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]Report, int64, error)
	GetByID(ctx context.Context, id string) (*Report, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context) (<-chan []Report, error)
}

type Handler struct {
	repo   Store
	cld    *cloudinary.Service
	bundle *i18n.Bundle

	// lastGood holds the most recent successfully fetched unfiltered
	// snapshot. When a store query fails, the in-memory filter engine runs
	// over it instead and the response is flagged stale.
	mu       sync.RWMutex
	lastGood []Report
}

func NewHandler(repo Store, cld *cloudinary.Service, bundle *i18n.Bundle) *Handler {
	return &Handler{
		repo:   repo,
		cld:    cld,
		bundle: bundle,
	}
}

// Create godoc
// @Summary Create a report
// @Description Create a lost/found report, optionally with an attached image. The image is uploaded first; if the upload fails no document is written.
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param category formData string true "Category" Enums(person, object, animal)
// @Param subCategory formData string false "Sub-category refinement"
// @Param locationName formData string true "City from the fixed list"
// @Param status formData string true "Status" Enums(lost, found)
// @Param dateTimeLostOrFound formData string false "When the subject was lost or found (RFC 3339)"
// @Param contactName formData string true "Contact name"
// @Param contactPhone formData string true "Contact phone"
// @Param image formData file false "Image attachment"
// @Success 201 {object} response.SuccessResponse{data=DisplayReport}
// @Failure 422 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_FORM")
		return
	}

	if err := ValidateCreateReport(&req); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			response.ValidationFailed(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	report := &Report{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		SubCategory:  req.SubCategory,
		LocationName: req.LocationName,
		Status:       req.Status,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
	}

	if req.DateTimeLostOrFound != "" {
		at, err := time.Parse(time.RFC3339, req.DateTimeLostOrFound)
		if err != nil {
			response.ValidationFailed(c, "dateTimeLostOrFound must be an RFC 3339 timestamp")
			return
		}
		report.DateTimeLostOrFound = &at
	}

	// Upload first: an upload failure aborts the whole creation. A write
	// failure after a successful upload leaves the asset orphaned, which is
	// accepted and not cleaned up.
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		if err := cloudinary.ValidateImageFile(fileHeader); err != nil {
			response.ValidationFailed(c, err.Error())
			return
		}
		if h.cld == nil {
			response.UploadError(c, errs.ErrUpload.Error())
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			response.BadRequest(c, "Unable to read image file", "INVALID_FILE")
			return
		}
		defer file.Close()

		result, err := h.cld.UploadImage(c.Request.Context(), file, fileHeader.Filename)
		if err != nil {
			log.WithError(err).Error("report image upload failed")
			c.Error(err)
			response.UploadError(c, errs.ErrUpload.Error())
			return
		}
		report.ImageURL = result.URL
		report.ImagePublicID = result.PublicID
	}

	if err := h.repo.Create(c.Request.Context(), report); err != nil {
		log.WithError(err).Error("report write failed")
		c.Error(err)
		response.DatabaseError(c, errs.ErrWrite.Error())
		return
	}

	response.Created(c, ToDisplay(*report))
}

// List godoc
// @Summary List reports
// @Description List reports ordered by creation time descending, optionally filtered by category, status, location and a free-text search term. On a store failure the last good snapshot is filtered in memory and returned flagged stale.
// @Tags reports
// @Produce json
// @Param q query string false "Case-insensitive search over title and description"
// @Param category query string false "Category" Enums(person, object, animal)
// @Param status query string false "Status" Enums(lost, found)
// @Param location query string false "City name"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]DisplayReport}
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	var filter Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", "INVALID_QUERY")
		return
	}

	page := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	offset := (page.Page - 1) * page.Limit

	list, total, err := h.repo.List(c.Request.Context(), filter, page.Limit, offset)
	if err != nil {
		log.WithError(err).Error("report listing query failed")
		c.Error(err)

		stale := filter.Apply(h.snapshot())
		response.Stale(c, ToDisplayList(stale), pagination.New(page.Page, page.Limit, int64(len(stale))))
		return
	}

	if filter.IsZero() && page.Page == 1 {
		h.remember(list)
	}

	response.Paginated(c, ToDisplayList(list), pagination.New(page.Page, page.Limit, total))
}

// Get godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=DisplayReport}
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	report, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.DatabaseError(c, "Failed to get report")
		return
	}
	if report == nil {
		response.NotFound(c, h.bundle.T(c.GetString(middleware.LangKey), "report_not_found"), "NOT_FOUND")
		return
	}

	response.Success(c, ToDisplay(*report))
}

// Update godoc
// @Summary Update a report (moderation)
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body UpdateReportRequest true "Fields to update"
// @Success 200 {object} response.SuccessResponse{data=DisplayReport}
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateReport(&req); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			response.ValidationFailed(c, err.Error())
			return
		}
		response.BadRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	update := bson.M{}
	if req.Title != "" {
		update["title"] = req.Title
	}
	if req.Description != "" {
		update["description"] = req.Description
	}
	if req.Category != "" {
		update["category"] = req.Category
	}
	if req.SubCategory != "" {
		update["subCategory"] = req.SubCategory
	}
	if req.LocationName != "" {
		update["locationName"] = req.LocationName
	}
	if req.Status != "" {
		update["status"] = req.Status
	}
	if req.ContactName != "" {
		update["contactName"] = req.ContactName
	}
	if req.ContactPhone != "" {
		update["contactPhone"] = req.ContactPhone
	}
	if req.DateTimeLostOrFound != "" {
		at, _ := time.Parse(time.RFC3339, req.DateTimeLostOrFound)
		update["dateTimeLostOrFound"] = at
	}

	if len(update) == 0 {
		response.BadRequest(c, "No fields to update", "EMPTY_UPDATE")
		return
	}

	id := c.Param("id")
	if err := h.repo.Update(c.Request.Context(), id, update); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, h.bundle.T(c.GetString(middleware.LangKey), "report_not_found"), "NOT_FOUND")
			return
		}
		c.Error(err)
		response.DatabaseError(c, "Failed to update report")
		return
	}

	report, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil || report == nil {
		response.InternalServerError(c, "Failed to retrieve updated report")
		return
	}

	response.Success(c, ToDisplay(*report))
}

// Delete godoc
// @Summary Delete a report (moderation)
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	report, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		response.DatabaseError(c, "Failed to delete report")
		return
	}
	if report == nil {
		response.NotFound(c, h.bundle.T(c.GetString(middleware.LangKey), "report_not_found"), "NOT_FOUND")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			response.NotFound(c, h.bundle.T(c.GetString(middleware.LangKey), "report_not_found"), "NOT_FOUND")
			return
		}
		c.Error(err)
		response.DatabaseError(c, "Failed to delete report")
		return
	}

	// Best effort; the document is already gone.
	if h.cld != nil && report.ImagePublicID != "" {
		if err := h.cld.Delete(c.Request.Context(), report.ImagePublicID); err != nil {
			log.WithError(err).Warn("orphaned report image not deleted")
		}
	}

	response.Success(c, map[string]string{"message": "Report deleted"})
}

// Feed godoc
// @Summary Live report feed
// @Description Server-sent events stream. Emits the full ordered report list immediately and again after every change. The stream is released when the client disconnects.
// @Tags reports
// @Produce text/event-stream
// @Success 200 {string} string "snapshot events"
// @Router /reports/feed [get]
func (h *Handler) Feed(c *gin.Context) {
	ch, err := h.repo.Subscribe(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.DatabaseError(c, "Failed to open report feed")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		snapshot, ok := <-ch
		if !ok {
			return false
		}
		h.remember(snapshot)
		c.SSEvent("snapshot", ToDisplayList(snapshot))
		return true
	})
}

func (h *Handler) remember(list []Report) {
	h.mu.Lock()
	h.lastGood = list
	h.mu.Unlock()
}

func (h *Handler) snapshot() []Report {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastGood
}
