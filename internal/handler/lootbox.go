package handler

import (
	"net/http"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/lootbox"
)

// LootboxHandler serves the lootbox API
type LootboxHandler struct {
	service lootbox.Service
}

// NewLootboxHandler creates a handler over the lootbox service
func NewLootboxHandler(service lootbox.Service) *LootboxHandler {
	return &LootboxHandler{service: service}
}

// OddsEntry is one row of the odds table
type OddsEntry struct {
	Rarity      domain.Rarity `json:"rarity"`
	Tier        int           `json:"tier"`
	DisplayName string        `json:"display_name"`
	Color       string        `json:"color"`
	Probability float64       `json:"probability"`
	PoolSize    int           `json:"pool_size"`
}

// OddsResponse is the full odds table in draw order
type OddsResponse struct {
	Tiers []OddsEntry `json:"tiers"`
	Total float64     `json:"total"`
}

// PoolTier summarises one rarity bucket
type PoolTier struct {
	Rarity      domain.Rarity `json:"rarity"`
	DisplayName string        `json:"display_name"`
	Color       string        `json:"color"`
	Count       int           `json:"count"`
	Skins       []domain.Skin `json:"skins,omitempty"`
}

// PoolResponse lists every bucket from most common to rarest
type PoolResponse struct {
	Total int        `json:"total"`
	Tiers []PoolTier `json:"tiers"`
}

// CreateSessionResponse carries the ID of a new session
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

// OpenLootboxRequest opens one lootbox for a session
type OpenLootboxRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

// DrawResponse is a draw result plus what a render surface needs to style it
type DrawResponse struct {
	lootbox.DrawResult
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
}

// HandleOdds returns the probability table
// @Summary Drop odds
// @Description Probability of each rarity tier and how many skins it holds
// @Tags lootbox
// @Produce json
// @Success 200 {object} OddsResponse
// @Router /api/v1/odds [get]
func (h *LootboxHandler) HandleOdds(w http.ResponseWriter, r *http.Request) {
	table := h.service.Odds()
	counts := h.service.Pool().Counts()

	resp := OddsResponse{Tiers: make([]OddsEntry, 0, len(table)), Total: table.Sum()}
	for _, tp := range table {
		resp.Tiers = append(resp.Tiers, OddsEntry{
			Rarity:      tp.Rarity,
			Tier:        tp.Rarity.Tier(),
			DisplayName: tp.Rarity.DisplayName(),
			Color:       tp.Rarity.Color(),
			Probability: tp.Probability,
			PoolSize:    counts[tp.Rarity],
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandlePool returns per-tier pool sizes
// @Summary Skin pool
// @Description Per-tier skin counts; pass include=skins to list the skins too
// @Tags lootbox
// @Produce json
// @Param include query string false "set to skins to include skin lists"
// @Success 200 {object} PoolResponse
// @Router /api/v1/pool [get]
func (h *LootboxHandler) HandlePool(w http.ResponseWriter, r *http.Request) {
	pool := h.service.Pool()
	withSkins := r.URL.Query().Get("include") == "skins"

	resp := PoolResponse{Total: pool.Total()}
	for _, rarity := range domain.AllRarities() {
		tier := PoolTier{
			Rarity:      rarity,
			DisplayName: rarity.DisplayName(),
			Color:       rarity.Color(),
			Count:       len(pool[rarity]),
		}
		if withSkins {
			tier.Skins = pool[rarity]
		}
		resp.Tiers = append(resp.Tiers, tier)
	}

	respondJSON(w, http.StatusOK, resp)
}

// HandleCreateSession starts a new lootbox session
// @Summary Create session
// @Tags lootbox
// @Produce json
// @Success 201 {object} CreateSessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/sessions [post]
func (h *LootboxHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, err := h.service.NewSession(r.Context())
	if err != nil {
		respondServiceError(w, r, OpCreateSession, err)
		return
	}
	respondJSON(w, http.StatusCreated, CreateSessionResponse{SessionID: id})
}

// HandleOpen opens a lootbox. A result with resolved=false means the rolled tier had no skins.
// @Summary Open lootbox
// @Tags lootbox
// @Accept json
// @Produce json
// @Param request body OpenLootboxRequest true "session to open for"
// @Success 200 {object} DrawResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/lootbox/open [post]
func (h *LootboxHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenLootboxRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpOpenLootbox); err != nil {
		return
	}

	res, err := h.service.Open(r.Context(), req.SessionID)
	if err != nil {
		respondServiceError(w, r, OpOpenLootbox, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Lootbox opened",
		"session_id", req.SessionID,
		"resolved", res.Resolved,
		"rarity", res.Rarity)

	respondJSON(w, http.StatusOK, DrawResponse{
		DrawResult:  *res,
		DisplayName: res.Rarity.DisplayName(),
		Color:       res.Rarity.Color(),
	})
}

// HandleState returns the session's current drop and history
// @Summary Session state
// @Tags lootbox
// @Produce json
// @Param session_id query string true "session ID"
// @Success 200 {object} lootbox.State
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/lootbox/state [get]
func (h *LootboxHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetValidatedQueryParam(r, w, "session_id", "uuid")
	if !ok {
		return
	}

	st, err := h.service.State(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, OpGetState, err)
		return
	}

	respondJSON(w, http.StatusOK, st)
}
