package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gmfarias/arquivo-pastas/internal/config"
	"github.com/gmfarias/arquivo-pastas/internal/database"
	"github.com/gmfarias/arquivo-pastas/internal/repository"
	"github.com/gmfarias/arquivo-pastas/internal/state"
)

// stubDetector returns a fixed name or error; the workflow must treat
// it exactly like the real implementations.
type stubDetector struct {
	name  string
	err   error
	calls int
}

func (s *stubDetector) Detect(_ context.Context, _ []byte) (string, error) {
	s.calls++
	return s.name, s.err
}

type fixture struct {
	db       *sql.DB
	loc      *state.ActiveLocation
	registry *RegistryHandler
	capture  *CaptureHandler
	detector *stubDetector
	echo     *echo.Echo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	ctx := context.Background()
	if err := database.InitSchema(ctx, db, database.SQLite); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}
	if err := database.Seed(ctx, db, database.SQLite); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	loc := state.NewActiveLocation(state.DefaultRoom, state.DefaultDrawer)
	det := &stubDetector{name: "Ana Oliveira"}
	cacheCfg := config.CacheConfig{} // disabled, no Redis in tests

	return &fixture{
		db:       db,
		loc:      loc,
		registry: NewRegistryHandler(repository.NewHierarchyRepo(db), loc, cacheCfg, nil),
		capture:  NewCaptureHandler(repository.NewDrawerRepo(db), repository.NewFolderRepo(db), det, loc, cacheCfg, nil, false),
		detector: det,
		echo:     echo.New(),
	}
}

func (f *fixture) do(t *testing.T, h echo.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h(f.echo.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func (f *fixture) hierarchy(t *testing.T) map[string]map[string][]string {
	t.Helper()
	rec := f.do(t, f.registry.GetHierarchy, http.MethodGet, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GetHierarchy status = %d", rec.Code)
	}
	var out struct {
		Rooms map[string]map[string][]string `json:"rooms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal hierarchy: %v", err)
	}
	return out.Rooms
}

func TestHierarchyCompleteAfterInit(t *testing.T) {
	f := newFixture(t)
	rooms := f.hierarchy(t)
	names, ok := rooms["Sala 2"]["Gaveta 2"]
	if !ok {
		t.Fatal("Sala 2/Gaveta 2 missing from hierarchy")
	}
	if names == nil || len(names) != 0 {
		t.Errorf("Sala 2/Gaveta 2 = %v, want []", names)
	}
}

func TestSetLocationThenConfirmAppendsToSelectedDrawer(t *testing.T) {
	f := newFixture(t)

	before := f.hierarchy(t)

	rec := f.do(t, f.registry.SetLocation, http.MethodPut, `{"room":"Sala 1","drawer":"Gaveta 2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("SetLocation status = %d", rec.Code)
	}

	rec = f.do(t, f.capture.Confirm, http.MethodPost, `{"name":"Ana Oliveira"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Confirm status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal confirm: %v", err)
	}
	if resp.Message != "Adicionado: Ana Oliveira -> Sala 1/Gaveta 2" {
		t.Errorf("message = %q", resp.Message)
	}

	after := f.hierarchy(t)
	got := after["Sala 1"]["Gaveta 2"]
	if len(got) != 1 || got[0] != "Ana Oliveira" {
		t.Errorf("Sala 1/Gaveta 2 = %v, want [Ana Oliveira]", got)
	}

	// No other drawer changed.
	for room, drawers := range before {
		for drawer, names := range drawers {
			if room == "Sala 1" && drawer == "Gaveta 2" {
				continue
			}
			if !reflect.DeepEqual(after[room][drawer], names) {
				t.Errorf("%s/%s changed from %v to %v", room, drawer, names, after[room][drawer])
			}
		}
	}
}

func TestConfirmFailsClosedOnUnresolvableLocation(t *testing.T) {
	f := newFixture(t)
	folders := repository.NewFolderRepo(f.db)

	f.do(t, f.registry.SetLocation, http.MethodPut, `{"room":"Sala 9","drawer":"Gaveta 9"}`)

	before, err := folders.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}

	rec := f.do(t, f.capture.Confirm, http.MethodPost, `{"name":"X"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Confirm status = %d, want 404", rec.Code)
	}

	after, err := folders.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after != before {
		t.Errorf("folder count changed from %d to %d", before, after)
	}
}

func TestConfirmRejectsBlankName(t *testing.T) {
	f := newFixture(t)
	for _, body := range []string{`{"name":""}`, `{"name":"   "}`, `{}`} {
		rec := f.do(t, f.capture.Confirm, http.MethodPost, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Confirm(%s) status = %d, want 400", body, rec.Code)
		}
	}
}

func TestDetectReturnsNameAndLocationWithoutPersisting(t *testing.T) {
	f := newFixture(t)
	f.loc.Set("Sala 3", "Gaveta 1")

	before := f.hierarchy(t)
	for i := 0; i < 5; i++ {
		rec := f.do(t, f.capture.Detect, http.MethodPost, `{}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("Detect status = %d", rec.Code)
		}
		var resp struct {
			DetectedName  string `json:"detected_name"`
			CurrentRoom   string `json:"current_room"`
			CurrentDrawer string `json:"current_drawer"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal detect: %v", err)
		}
		if resp.DetectedName != "Ana Oliveira" {
			t.Errorf("detected_name = %q", resp.DetectedName)
		}
		if resp.CurrentRoom != "Sala 3" || resp.CurrentDrawer != "Gaveta 1" {
			t.Errorf("location = (%q, %q), want (Sala 3, Gaveta 1)", resp.CurrentRoom, resp.CurrentDrawer)
		}
	}
	if f.detector.calls != 5 {
		t.Errorf("detector called %d times, want 5", f.detector.calls)
	}
	if !reflect.DeepEqual(f.hierarchy(t), before) {
		t.Error("Detect mutated the hierarchy")
	}
}

func TestDetectRejectsMalformedImagePayload(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, f.capture.Detect, http.MethodPost, `{"image":"data:image/png;base64,%%%not-base64%%%"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Detect status = %d, want 400", rec.Code)
	}
	if f.detector.calls != 0 {
		t.Errorf("detector called %d times on malformed payload, want 0", f.detector.calls)
	}
}

func TestDetectorFailureIsARequestFailure(t *testing.T) {
	f := newFixture(t)
	f.detector.err = errors.New("engine down")

	rec := f.do(t, f.capture.Detect, http.MethodPost, `{}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Detect status = %d, want 502", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := resp["detected_name"]; ok {
		t.Error("failure response carries a detected_name field")
	}
	if resp["error"] == "" {
		t.Error("failure response missing error field")
	}
}
