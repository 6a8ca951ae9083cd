package handler

import (
	"net/http"

	"github.com/owlpost/lumos/internal/service"
)

// CatalogHandler serves the cached character, spell, and potion collections
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Characters handles GET /v1/characters
func (h *CatalogHandler) Characters(w http.ResponseWriter, r *http.Request) {
	characters, err := h.catalog.Characters(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, characters, len(characters), nil)
}

// Students handles GET /v1/characters/students
func (h *CatalogHandler) Students(w http.ResponseWriter, r *http.Request) {
	students, err := h.catalog.Students(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, students, len(students), nil)
}

// Staff handles GET /v1/characters/staff
func (h *CatalogHandler) Staff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.catalog.Staff(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, staff, len(staff), nil)
}

// CharacterByID handles GET /v1/characters/{id}
func (h *CatalogHandler) CharacterByID(w http.ResponseWriter, r *http.Request) {
	character, err := h.catalog.CharacterByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, character, nil)
}

// Spells handles GET /v1/spells
func (h *CatalogHandler) Spells(w http.ResponseWriter, r *http.Request) {
	spells, err := h.catalog.Spells(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, spells, len(spells), nil)
}

// Potions handles GET /v1/potions
func (h *CatalogHandler) Potions(w http.ResponseWriter, r *http.Request) {
	potions, err := h.catalog.Potions(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteCollection(w, http.StatusOK, potions, len(potions), nil)
}

// PotionByID handles GET /v1/potions/{id}
func (h *CatalogHandler) PotionByID(w http.ResponseWriter, r *http.Request) {
	potion, err := h.catalog.PotionByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, potion, nil)
}

// RandomCharacter handles GET /v1/characters/random
func (h *CatalogHandler) RandomCharacter(w http.ResponseWriter, r *http.Request) {
	character, err := h.catalog.RandomCharacter(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, character, nil)
}

// RandomSpell handles GET /v1/spells/random
func (h *CatalogHandler) RandomSpell(w http.ResponseWriter, r *http.Request) {
	spell, err := h.catalog.RandomSpell(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, spell, nil)
}
