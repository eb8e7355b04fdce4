package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DerekRojGar/awa-AquaReminder/models"
	"github.com/DerekRojGar/awa-AquaReminder/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestEnv(t *testing.T) (*gin.Engine, *services.IntakeService, *services.ProfileService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "intake.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.IntakeEvent{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	intakeSvc := services.NewIntakeService(db)
	profileSvc := services.NewProfileService(t.TempDir())
	themeSvc := services.NewThemeService(t.TempDir())

	ic := NewIntakeController(intakeSvc, profileSvc)
	pc := NewProfileController(profileSvc, intakeSvc)
	tc := NewThemeController(themeSvc)

	// auth middleware is exercised separately; these tests hit handlers direct
	r := gin.New()
	r.POST("/intake", ic.Record)
	r.GET("/intake/today", ic.TodayTotal)
	r.GET("/intake/progress", ic.Progress)
	r.GET("/intake/recent", ic.Recent)
	r.GET("/intake/range", ic.Range)
	r.GET("/intake/daily", ic.DailyTotals)
	r.DELETE("/intake/last", ic.UndoLast)
	r.DELETE("/intake", ic.Reset)
	r.GET("/profile", pc.Get)
	r.PUT("/profile", pc.Save)
	r.DELETE("/profile", pc.Delete)
	r.GET("/profile/complete", pc.Complete)
	r.POST("/profile/preview", pc.Preview)
	r.POST("/reset", pc.ResetAll)
	r.GET("/theme", tc.Get)
	r.PUT("/theme", tc.Save)
	r.POST("/theme/toggle", tc.Toggle)

	return r, intakeSvc, profileSvc
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s %s: decode response %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, resp
}

func TestRecordThenTodayTotal(t *testing.T) {
	r, _, _ := newTestEnv(t)

	w, _ := doJSON(t, r, http.MethodPost, "/intake", `{"amount_ml": 250}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	w, resp := doJSON(t, r, http.MethodPost, "/intake", `{"amount_ml": 500}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if resp["total_ml"].(float64) != 750 {
		t.Fatalf("total_ml after second record = %v, want 750", resp["total_ml"])
	}

	w, resp = doJSON(t, r, http.MethodGet, "/intake/today", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp["total_ml"].(float64) != 750 {
		t.Fatalf("total_ml = %v, want 750", resp["total_ml"])
	}
}

func TestRecordRejectsNonPositiveAmount(t *testing.T) {
	r, _, _ := newTestEnv(t)

	for _, body := range []string{`{"amount_ml": 0}`, `{"amount_ml": -100}`, `{}`} {
		w, _ := doJSON(t, r, http.MethodPost, "/intake", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status for %s = %d, want 400", body, w.Code)
		}
	}

	_, resp := doJSON(t, r, http.MethodGet, "/intake/today", "")
	if resp["total_ml"].(float64) != 0 {
		t.Fatalf("rejected records leaked, total = %v", resp["total_ml"])
	}
}

func TestUndoEndpoint(t *testing.T) {
	r, _, _ := newTestEnv(t)

	doJSON(t, r, http.MethodPost, "/intake", `{"amount_ml": 250}`)
	doJSON(t, r, http.MethodPost, "/intake", `{"amount_ml": 500}`)

	w, resp := doJSON(t, r, http.MethodDelete, "/intake/last", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	undone := resp["undone"].(map[string]any)
	if undone["amount_ml"].(float64) != 500 {
		t.Fatalf("undone amount = %v, want 500", undone["amount_ml"])
	}
	if resp["total_ml"].(float64) != 250 {
		t.Fatalf("total after undo = %v, want 250", resp["total_ml"])
	}

	// drain, then undo on empty is not an error
	doJSON(t, r, http.MethodDelete, "/intake/last", "")
	w, resp = doJSON(t, r, http.MethodDelete, "/intake/last", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status on empty ledger = %d, want 200", w.Code)
	}
	if resp["undone"] != nil {
		t.Fatalf("undone = %v, want null", resp["undone"])
	}
}

func TestProgressUsesProfileGoal(t *testing.T) {
	r, _, profileSvc := newTestEnv(t)

	_, resp := doJSON(t, r, http.MethodGet, "/intake/progress", "")
	if resp["goal_source"] != "default" || resp["goal_ml"].(float64) != 2000 {
		t.Fatalf("expected default goal 2000, got %v (%v)", resp["goal_ml"], resp["goal_source"])
	}

	if err := profileSvc.Save(&models.Profile{
		WeightKg: 80, HeightCm: 180, Sex: models.SexMale,
		Activity: models.ActivityHigh, DailyGoalML: 3300,
	}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	doJSON(t, r, http.MethodPost, "/intake", `{"amount_ml": 1650}`)

	_, resp = doJSON(t, r, http.MethodGet, "/intake/progress", "")
	if resp["goal_source"] != "profile" || resp["goal_ml"].(float64) != 3300 {
		t.Fatalf("expected profile goal 3300, got %v (%v)", resp["goal_ml"], resp["goal_source"])
	}
	if resp["percent"].(float64) != 50 {
		t.Fatalf("percent = %v, want 50", resp["percent"])
	}
}

func TestRecentEndpointValidatesLimit(t *testing.T) {
	r, _, _ := newTestEnv(t)

	w, _ := doJSON(t, r, http.MethodGet, "/intake/recent?limit=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/intake/recent?limit=-3", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	doJSON(t, r, http.MethodPost, "/intake", `{"amount_ml": 300}`)
	w, resp := doJSON(t, r, http.MethodGet, "/intake/recent", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	events := resp["events"].([]any)
	if len(events) != 1 {
		t.Fatalf("events = %v, want one entry", events)
	}
}

func TestRangeEndpointRequiresParams(t *testing.T) {
	r, _, _ := newTestEnv(t)

	w, _ := doJSON(t, r, http.MethodGet, "/intake/range?start=2026-03-01", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/intake/range?start=03/01/2026&end=2026-03-10", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status for malformed date = %d, want 400", w.Code)
	}
}

func TestRecordEmitsWarningForLargeIntake(t *testing.T) {
	r, _, _ := newTestEnv(t)

	_, resp := doJSON(t, r, http.MethodPost, "/intake", `{"amount_ml": 2500}`)
	warnings, ok := resp["warnings"].([]any)
	if !ok || len(warnings) == 0 {
		t.Fatalf("warnings = %v, want large_single_intake", resp["warnings"])
	}
	first := warnings[0].(map[string]any)
	if first["code"] != "large_single_intake" {
		t.Fatalf("warning code = %v, want large_single_intake", first["code"])
	}
}
