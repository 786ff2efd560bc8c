package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sainttx/itemforge/internal/domain"
	"github.com/sainttx/itemforge/internal/forge"
	"github.com/sainttx/itemforge/internal/logger"
)

// PreviewStackRequest describes a stack to build. Omitting lore and sending
// an empty lore array are different requests: the first builds a stack
// without lore, the second one with an explicitly empty lore list.
type PreviewStackRequest struct {
	Material     string         `json:"material" validate:"required,max=100"`
	Amount       int            `json:"amount" validate:"min=0,max=10000"`
	Durability   int16          `json:"durability" validate:"min=0"`
	DisplayName  *string        `json:"display_name,omitempty" validate:"omitempty,max=256"`
	Lore         []string       `json:"lore,omitempty" validate:"omitempty,max=64,dive,max=256"`
	Enchantments map[string]int `json:"enchantments,omitempty" validate:"omitempty,max=32"`
	Flags        []string       `json:"flags,omitempty" validate:"omitempty,max=16,dive,max=64"`
}

// PreviewStackResponse is the built stack. Lore is null when the stack has
// no lore and an array (possibly empty) when it does.
type PreviewStackResponse struct {
	Material     string            `json:"material"`
	Amount       int               `json:"amount"`
	Durability   int16             `json:"durability"`
	DisplayName  string            `json:"display_name"`
	CustomName   bool              `json:"custom_name"`
	Lore         []string          `json:"lore"`
	Enchantments map[string]int    `json:"enchantments,omitempty"`
	Flags        []domain.ItemFlag `json:"flags,omitempty"`
}

// HandlePreviewStack builds a stack from the request and returns it without
// retaining any state.
func HandlePreviewStack(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PreviewStackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode preview request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Amount == 0 {
			req.Amount = 1
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid preview request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Invalid request",
				"fields": FormatValidationError(err),
			})
			return
		}

		built, err := svc.BuildStack(r.Context(), forge.Spec{
			Material:     req.Material,
			Amount:       req.Amount,
			Durability:   req.Durability,
			DisplayName:  req.DisplayName,
			Lore:         req.Lore,
			Enchantments: req.Enchantments,
			Flags:        req.Flags,
		})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, domain.ErrUnknownMaterial) ||
				errors.Is(err, domain.ErrUnknownEnchantment) ||
				errors.Is(err, domain.ErrUnknownItemFlag) ||
				errors.Is(err, domain.ErrInvalidMaterial) {
				status = http.StatusBadRequest
			}
			log.Warn("Failed to build stack", "error", err, "material", req.Material)
			respondError(w, status, err.Error())
			return
		}

		respondJSON(w, http.StatusOK, stackResponse(svc, built))
	}
}

// stackResponse flattens a built stack into its wire shape.
func stackResponse(svc forge.Service, s domain.Stack) PreviewStackResponse {
	resp := PreviewStackResponse{
		Material:   s.Material.Name,
		Amount:     s.Amount,
		Durability: s.Durability,
		Lore:       s.Meta.Lore,
		Flags:      s.Meta.Flags,
	}

	if s.Meta.HasDisplayName() {
		resp.DisplayName = *s.Meta.DisplayName
		resp.CustomName = true
	} else {
		resp.DisplayName = svc.DefaultDisplay(s.Material)
	}

	if len(s.Meta.Enchantments) > 0 {
		resp.Enchantments = make(map[string]int, len(s.Meta.Enchantments))
		for e, level := range s.Meta.Enchantments {
			resp.Enchantments[e.Name] = level
		}
	}

	return resp
}
