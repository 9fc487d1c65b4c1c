package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/services"
)

// PersonnelHandler handles personnel-related HTTP requests
type PersonnelHandler struct {
	personnelService services.PersonnelService
	logger           *logrus.Logger
}

// NewPersonnelHandler creates a new personnel handler
func NewPersonnelHandler(personnelService services.PersonnelService, logger *logrus.Logger) *PersonnelHandler {
	return &PersonnelHandler{
		personnelService: personnelService,
		logger:           logger,
	}
}

// @Summary List personnel
// @Description Get all personnel with their commission profiles, ordered by ID
// @Tags personnel
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Personnel}
// @Failure 500 {object} models.APIResponse
// @Router /personnel [get]
func (h *PersonnelHandler) ListPersonnel(c *gin.Context) {
	personnel, err := h.personnelService.ListPersonnel(c.Request.Context(), nil)
	if err != nil {
		handleServiceError(c, h.logger, err, "list_personnel")
		return
	}

	respondSuccess(c, http.StatusOK, personnel, "")
}

// @Summary Get personnel
// @Description Get a personnel record by ID
// @Tags personnel
// @Produce json
// @Param id path int true "Personnel ID"
// @Success 200 {object} models.APIResponse{data=models.Personnel}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /personnel/{id} [get]
func (h *PersonnelHandler) GetPersonnel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	personnel, err := h.personnelService.GetPersonnel(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err, "get_personnel")
		return
	}

	respondSuccess(c, http.StatusOK, personnel, "")
}

// @Summary Create personnel
// @Description Create a personnel record. Age must be 19 or older and the commission profile must exist.
// @Tags personnel
// @Accept json
// @Produce json
// @Param personnel body services.PersonnelRequest true "Personnel data"
// @Success 201 {object} models.APIResponse{data=models.Personnel}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /personnel [post]
func (h *PersonnelHandler) CreatePersonnel(c *gin.Context) {
	var req services.PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody, err.Error())
		return
	}

	personnel, err := h.personnelService.CreatePersonnel(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err, "create_personnel")
		return
	}

	c.Header("Location", "/api/personnel/"+strconv.FormatInt(personnel.ID, 10))
	respondSuccess(c, http.StatusCreated, personnel, "Personnel created successfully")
}

// @Summary Update personnel
// @Description Replace the fields of an existing personnel record
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path int true "Personnel ID"
// @Param personnel body services.PersonnelRequest true "Personnel data"
// @Success 200 {object} models.APIResponse{data=models.Personnel}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /personnel/{id} [put]
func (h *PersonnelHandler) UpdatePersonnel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.PersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody, err.Error())
		return
	}

	personnel, err := h.personnelService.UpdatePersonnel(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err, "update_personnel")
		return
	}

	respondSuccess(c, http.StatusOK, personnel, "Personnel updated successfully")
}

// @Summary Delete personnel
// @Description Delete a personnel record and all of its sales records. Requires confirm=true.
// @Tags personnel
// @Produce json
// @Param id path int true "Personnel ID"
// @Param confirm query bool true "Must be true to delete"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /personnel/{id} [delete]
func (h *PersonnelHandler) DeletePersonnel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	confirm, _ := strconv.ParseBool(c.DefaultQuery("confirm", "false"))

	if err := h.personnelService.DeletePersonnel(c.Request.Context(), id, confirm); err != nil {
		handleServiceError(c, h.logger, err, "delete_personnel")
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Personnel deleted successfully. Associated sales records have been removed.")
}
