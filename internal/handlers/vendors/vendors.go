package vendors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/domain"
	"github.com/sushmithabungatavula/ThrifstoreBackend/internal/dto"
	vendorservice "github.com/sushmithabungatavula/ThrifstoreBackend/internal/service/vendorservice"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/utils"
	"github.com/sushmithabungatavula/ThrifstoreBackend/pkg/validate"
)

type Service interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.Vendor, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Vendor, error)
	GenerateToken(vendorID int64) (string, error)
}

type VendorHandler struct {
	vendorService Service
}

func New(vendorService Service) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// Signup godoc
//
//	@Summary		Register a new vendor
//	@Description	Create a vendor account and return a JWT token.
//	@Tags			Vendors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VendorSignupRequestDTO	true	"Signup request body"
//	@Success		201		{object}	dto.VendorSignupResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Email already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/vendor/signup [post]
func (h *VendorHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.VendorSignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.Signup(r.Context(), req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, vendorservice.ErrEmailExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	token, err := h.vendorService.GenerateToken(vendor.VendorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusCreated, dto.VendorSignupResponseDTO{
		VendorID: vendor.VendorID,
		Name:     vendor.Name,
		Email:    vendor.Email,
		Token:    token,
	})
}

// Login godoc
//
//	@Summary		Authenticate a vendor
//	@Description	Log in with vendor credentials and get a JWT token.
//	@Tags			Vendors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VendorLoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.VendorLoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/vendor/login [post]
func (h *VendorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.VendorLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vendor, err := h.vendorService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.vendorService.GenerateToken(vendor.VendorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.VendorLoginResponseDTO{
		VendorID: vendor.VendorID,
		Name:     vendor.Name,
		Email:    vendor.Email,
		Token:    token,
	})
}
