package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"commission-reporting-api/internal/services"
)

// CommissionProfileHandler handles commission profile HTTP requests
type CommissionProfileHandler struct {
	profileService services.CommissionProfileService
	logger         *logrus.Logger
}

// NewCommissionProfileHandler creates a new commission profile handler
func NewCommissionProfileHandler(profileService services.CommissionProfileService, logger *logrus.Logger) *CommissionProfileHandler {
	return &CommissionProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// @Summary List commission profiles
// @Description Get all commission profiles ordered by profile name
// @Tags commission-profiles
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CommissionProfile}
// @Failure 500 {object} models.APIResponse
// @Router /commissionprofile [get]
func (h *CommissionProfileHandler) ListCommissionProfiles(c *gin.Context) {
	profiles, err := h.profileService.ListCommissionProfiles(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, err, "list_commission_profiles")
		return
	}

	respondSuccess(c, http.StatusOK, profiles, "")
}

// @Summary Get a commission profile
// @Tags commission-profiles
// @Produce json
// @Param id path int true "Commission profile ID"
// @Success 200 {object} models.APIResponse{data=models.CommissionProfile}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /commissionprofile/{id} [get]
func (h *CommissionProfileHandler) GetCommissionProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.GetCommissionProfile(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, h.logger, err, "get_commission_profile")
		return
	}

	respondSuccess(c, http.StatusOK, profile, "")
}

// @Summary Create a commission profile
// @Tags commission-profiles
// @Accept json
// @Produce json
// @Param profile body services.CommissionProfileRequest true "Commission profile data"
// @Success 201 {object} models.APIResponse{data=models.CommissionProfile}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /commissionprofile [post]
func (h *CommissionProfileHandler) CreateCommissionProfile(c *gin.Context) {
	var req services.CommissionProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody, err.Error())
		return
	}

	profile, err := h.profileService.CreateCommissionProfile(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err, "create_commission_profile")
		return
	}

	c.Header("Location", "/api/commissionprofile/"+strconv.FormatInt(profile.ID, 10))
	respondSuccess(c, http.StatusCreated, profile, "")
}

// @Summary Update a commission profile
// @Tags commission-profiles
// @Accept json
// @Produce json
// @Param id path int true "Commission profile ID"
// @Param profile body services.CommissionProfileRequest true "Commission profile data"
// @Success 200 {object} models.APIResponse{data=models.CommissionProfile}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /commissionprofile/{id} [put]
func (h *CommissionProfileHandler) UpdateCommissionProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req services.CommissionProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidBody, err.Error())
		return
	}

	profile, err := h.profileService.UpdateCommissionProfile(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, h.logger, err, "update_commission_profile")
		return
	}

	respondSuccess(c, http.StatusOK, profile, "")
}

// @Summary Delete a commission profile
// @Description Fails with 400 while any personnel record references the profile
// @Tags commission-profiles
// @Produce json
// @Param id path int true "Commission profile ID"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /commissionprofile/{id} [delete]
func (h *CommissionProfileHandler) DeleteCommissionProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.profileService.DeleteCommissionProfile(c.Request.Context(), id); err != nil {
		handleServiceError(c, h.logger, err, "delete_commission_profile")
		return
	}

	respondSuccess(c, http.StatusOK, nil, fmt.Sprintf("Commission profile with ID %d deleted successfully", id))
}
