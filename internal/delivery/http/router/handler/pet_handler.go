package handler

import (
	"log/slog"
	"net/http"

	"pinesvet/internal/delivery/http/response"
	"pinesvet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PetHandler holds dependencies for pet management handlers.
type PetHandler struct {
	uc     usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(uc usecase.PetUsecase, logger *slog.Logger) *PetHandler {
	return &PetHandler{uc: uc, logger: logger}
}

type petRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     int    `json:"age"`
}

func (r petRequest) toInput() usecase.PetInput {
	return usecase.PetInput{
		Name:    r.Name,
		Species: r.Species,
		Breed:   r.Breed,
		Age:     r.Age,
	}
}

// AddPet registers a new pet for the current user.
func (h *PetHandler) AddPet(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req petRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	pet, err := h.uc.AddPet(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pet, "Pet added successfully")
}

// GetPet retrieves one of the current user's pets.
func (h *PetHandler) GetPet(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	petID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pet ID")
	}

	pet, err := h.uc.GetPet(c.Request().Context(), userID, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet retrieved successfully")
}

// ListPets retrieves all pets of the current user.
func (h *PetHandler) ListPets(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pets, err := h.uc.ListPets(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pets, "Pets retrieved successfully")
}

// UpdatePet modifies one of the current user's pets.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	petID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pet ID")
	}

	var req petRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pet input")
	}

	pet, err := h.uc.UpdatePet(c.Request().Context(), userID, petID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Pet updated successfully")
}

// RemovePet deletes one of the current user's pets.
func (h *PetHandler) RemovePet(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	petID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pet ID")
	}

	if err := h.uc.RemovePet(c.Request().Context(), userID, petID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pet removed successfully")
}
