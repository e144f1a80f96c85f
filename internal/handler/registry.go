package handler // handler package contains the HTTP-facing registry and capture workflow

import (
    "net/http" // http provides status code constants

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/gmfarias/arquivo-pastas/internal/config"
    "github.com/gmfarias/arquivo-pastas/internal/middleware"
    "github.com/gmfarias/arquivo-pastas/internal/repository"
    "github.com/gmfarias/arquivo-pastas/internal/state"
)

// Route paths shared with the router and with cache invalidation.
const (
    HierarchyPath = "/v1/hierarchy"
    LocationPath  = "/v1/location"
    DetectPath    = "/v1/detect"
    FoldersPath   = "/v1/folders"
)

// RegistryHandler serves the hierarchy listing and the active-location
// selection. Redis and the cache config may be nil/disabled; both
// paths work without them.
type RegistryHandler struct {
    HierarchyRepo *repository.HierarchyRepo
    Location      *state.ActiveLocation
    CacheCfg      config.CacheConfig
    Redis         *redis.Client
}

// NewRegistryHandler constructs a RegistryHandler with the provided
// dependencies. The repo and location state must be non-nil.
func NewRegistryHandler(hierarchyRepo *repository.HierarchyRepo, loc *state.ActiveLocation, cacheCfg config.CacheConfig, rdb *redis.Client) *RegistryHandler {
    if hierarchyRepo == nil || loc == nil {
        panic("nil dependency passed to NewRegistryHandler")
    }
    return &RegistryHandler{
        HierarchyRepo: hierarchyRepo,
        Location:      loc,
        CacheCfg:      cacheCfg,
        Redis:         rdb,
    }
}

// GetHierarchy handles GET /v1/hierarchy. It returns every seeded room
// and drawer with the student names filed under each drawer, plus the
// active (room, drawer) selection. Reads are side-effect-free.
func (h *RegistryHandler) GetHierarchy(c echo.Context) error {
    rooms, err := h.HierarchyRepo.Snapshot(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }
    room, drawer := h.Location.Get()
    return c.JSON(http.StatusOK, map[string]any{
        "rooms":          rooms,
        "current_room":   room,
        "current_drawer": drawer,
    })
}

// SetLocation handles PUT /v1/location. It replaces the active
// (room, drawer) pair without validating it against the registry;
// validation happens at confirm time, where an unresolvable pair fails
// closed.
func (h *RegistryHandler) SetLocation(c echo.Context) error {
    var body struct {
        Room   string `json:"room"`
        Drawer string `json:"drawer"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    h.Location.Set(body.Room, body.Drawer)
    // The hierarchy payload embeds the current selection, so a cached
    // copy is stale the moment the selection moves.
    middleware.Invalidate(c.Request().Context(), h.CacheCfg, h.Redis, HierarchyPath)
    return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
