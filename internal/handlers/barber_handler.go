package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/mamede573/BarberManager/internal/httperr"
	"github.com/mamede573/BarberManager/internal/media"
	"github.com/mamede573/BarberManager/internal/models"
)

type BarberHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewBarberHandler(db *gorm.DB, uploader *media.Uploader) *BarberHandler {
	return &BarberHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name       string   `json:"name" binding:"required"`
	Bio        string   `json:"bio"`
	Location   string   `json:"location"`
	PriceRange string   `json:"price_range"`
	Tags       []string `json:"tags"`
}

type UpdateBarberRequest struct {
	Name       *string   `json:"name,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Location   *string   `json:"location,omitempty"`
	PriceRange *string   `json:"price_range,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	Active     *bool     `json:"is_active,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("is_active = ?", true).
		Order("rating DESC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.Where("id = ?", id).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	priceRange := req.PriceRange
	if priceRange == "" {
		priceRange = "$$"
	}

	barber := models.Barber{
		Name:       req.Name,
		Bio:        req.Bio,
		Location:   req.Location,
		PriceRange: priceRange,
		Tags:       pq.StringArray(req.Tags),
		Active:     true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.Where("id = ?", id).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Bio != nil {
		barber.Bio = *req.Bio
	}
	if req.Location != nil {
		barber.Location = *req.Location
	}
	if req.PriceRange != nil {
		barber.PriceRange = *req.PriceRange
	}
	if req.Tags != nil {
		barber.Tags = pq.StringArray(*req.Tags)
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// --------- Imagem (webp + S3) ---------

func (h *BarberHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.Where("id = ?", id).First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return
	}
	defer src.Close()

	encoded, err := media.ProcessImage(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	field := c.DefaultQuery("field", "image")
	if field != "image" && field != "avatar" {
		httperr.BadRequest(c, "invalid_field", "Campo deve ser image ou avatar.")
		return
	}

	key := fmt.Sprintf("barbers/%s/%s.webp", barber.ID, field)

	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao subir a imagem.")
		return
	}

	if field == "avatar" {
		barber.Avatar = url
	} else {
		barber.Image = url
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao salvar a imagem.")
		return
	}

	c.JSON(http.StatusOK, barber)
}
