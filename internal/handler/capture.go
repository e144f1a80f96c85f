package handler

import (
    "context"
    "encoding/base64"
    "errors"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/gmfarias/arquivo-pastas/internal/config"
    "github.com/gmfarias/arquivo-pastas/internal/detector"
    "github.com/gmfarias/arquivo-pastas/internal/middleware"
    "github.com/gmfarias/arquivo-pastas/internal/queue"
    "github.com/gmfarias/arquivo-pastas/internal/repository"
    queue_publisher "github.com/gmfarias/arquivo-pastas/internal/service"
    "github.com/gmfarias/arquivo-pastas/internal/state"
)

// CaptureHandler implements the detect/confirm cycle. Detect proposes
// a candidate name without touching the store; Confirm resolves the
// active location to a drawer and appends the folder row. The candidate
// name lives on the client between the two calls; the server keeps no
// pending-detection state.
type CaptureHandler struct {
    DrawerRepo *repository.DrawerRepo
    FolderRepo *repository.FolderRepo
    Detector   detector.Detector
    Location   *state.ActiveLocation
    CacheCfg   config.CacheConfig
    Redis      *redis.Client
    // PublishEvents enables best-effort folder-registered events when a
    // broker is configured. Publish failures never fail the request.
    PublishEvents bool
}

// NewCaptureHandler constructs a CaptureHandler with the provided
// dependencies. All repositories, the detector and the location state
// must be non-nil.
func NewCaptureHandler(drawerRepo *repository.DrawerRepo, folderRepo *repository.FolderRepo, det detector.Detector, loc *state.ActiveLocation, cacheCfg config.CacheConfig, rdb *redis.Client, publishEvents bool) *CaptureHandler {
    if drawerRepo == nil || folderRepo == nil || det == nil || loc == nil {
        panic("nil dependency passed to NewCaptureHandler")
    }
    return &CaptureHandler{
        DrawerRepo:    drawerRepo,
        FolderRepo:    folderRepo,
        Detector:      det,
        Location:      loc,
        CacheCfg:      cacheCfg,
        Redis:         rdb,
        PublishEvents: publishEvents,
    }
}

// Detect handles POST /v1/detect. The body carries an optional image as
// a data URL or bare base64 string. The handler decodes the payload,
// runs the configured detector and returns the candidate name together
// with the current location. Nothing is persisted. A malformed payload
// is a 400; a detector failure is a 502 — an error never travels inside
// the detected-name field.
func (h *CaptureHandler) Detect(c echo.Context) error {
    var body struct {
        Image string `json:"image"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }

    imageBytes, err := decodeImagePayload(body.Image)
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid image payload"})
    }

    name, err := h.Detector.Detect(c.Request().Context(), imageBytes)
    if err != nil {
        if errors.Is(err, detector.ErrDecode) {
            return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid image payload"})
        }
        return c.JSON(http.StatusBadGateway, map[string]string{"error": "detection failed"})
    }

    room, drawer := h.Location.Get()
    return c.JSON(http.StatusOK, map[string]string{
        "detected_name":  name,
        "current_room":   room,
        "current_drawer": drawer,
    })
}

// Confirm handles POST /v1/folders. It reads the active location,
// resolves it to a drawer id and appends the folder row. If the pair no
// longer resolves the operation fails closed with 404 and no row is
// written. Blank names are rejected before any store access.
func (h *CaptureHandler) Confirm(c echo.Context) error {
    var body struct {
        Name string `json:"name"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
    }

    ctx := c.Request().Context()
    room, drawer := h.Location.Get()

    drawerID, err := h.DrawerRepo.ResolveID(ctx, room, drawer)
    if err != nil {
        if errors.Is(err, repository.ErrDrawerNotFound) {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "room/drawer not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
    }

    folderID, err := h.FolderRepo.Append(ctx, drawerID, name)
    if err != nil {
        // A constraint rejection means the drawer row vanished between
        // resolution and insert; it is the same not-found failure.
        if errors.Is(err, repository.ErrConstraint) {
            return c.JSON(http.StatusNotFound, map[string]string{"error": "room/drawer not found"})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not register folder"})
    }

    middleware.Invalidate(ctx, h.CacheCfg, h.Redis, HierarchyPath)

    if h.PublishEvents {
        event := queue.FolderRegisteredEvent{
            FolderID:     folderID,
            StudentName:  name,
            RoomName:     room,
            DrawerName:   drawer,
            RegisteredAt: time.Now().UTC().Format(time.RFC3339),
        }
        go func() {
            pubCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
            defer cancel()
            _ = queue_publisher.PublishFolderRegistered(pubCtx, event)
        }()
    }

    return c.JSON(http.StatusCreated, map[string]any{
        "message":   fmt.Sprintf("Adicionado: %s -> %s/%s", name, room, drawer),
        "folder_id": folderID,
    })
}

// decodeImagePayload turns the request's image field into raw bytes.
// An empty field is a valid "no image" payload (the substitute detector
// ignores its input). Data URLs have their header stripped before
// base64 decoding.
func decodeImagePayload(field string) ([]byte, error) {
    if field == "" {
        return nil, nil
    }
    encoded := field
    if idx := strings.IndexByte(field, ','); idx >= 0 && strings.HasPrefix(field, "data:") {
        encoded = field[idx+1:]
    }
    return base64.StdEncoding.DecodeString(encoded)
}
