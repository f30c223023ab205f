package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"kidney-care-ai/app/server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func predictBody(serumCreatinine float64) map[string]any {
	return map[string]any{
		"age":                  48,
		"blood_pressure":       80,
		"specific_gravity":     1.02,
		"albumin":              1,
		"blood_glucose_random": 121,
		"blood_urea":           36,
		"serum_creatinine":     serumCreatinine,
		"sodium":               137,
		"hemoglobin":           15.4,
		"packed_cell_volume":   44,
		"red_blood_cell_count": 5.2,
		"hypertension":         1,
		"diabetes_mellitus":    0,
	}
}

func TestPredictRequiresAuthentication(t *testing.T) {
	_, e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/predict", predictBody(1.2), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPredictNamesMissingField(t *testing.T) {
	app, e, store, _ := newTestApp(t)
	client := createUser(t, app, "client1", models.RoleClient)
	token := openSession(t, store, client)

	body := predictBody(1.2)
	delete(body, "sodium")

	rec := doJSON(e, http.MethodPost, "/predict", body, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "sodium")
}

func TestPredictRejectsNonNumericValue(t *testing.T) {
	app, e, store, _ := newTestApp(t)
	client := createUser(t, app, "client1", models.RoleClient)
	token := openSession(t, store, client)

	body := predictBody(1.2)
	body["blood_urea"] = "not a number"

	rec := doJSON(e, http.MethodPost, "/predict", body, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "blood_urea")
}

func TestPredictPersistsDetectionResult(t *testing.T) {
	app, e, store, _ := newTestApp(t)
	client := createUser(t, app, "client1", models.RoleClient)
	token := openSession(t, store, client)

	// toy model: creatinine above 2.0 flips to CKD
	rec := doJSON(e, http.MethodPost, "/predict", predictBody(8.5), token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["prediction"])
	assert.Equal(t, "CKD Detected", body["message"])

	rec = doJSON(e, http.MethodPost, "/predict", predictBody(0.9), token)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(0), body["prediction"])
	assert.Equal(t, "No CKD Detected", body["message"])

	var results []models.DetectionResult
	require.NoError(t, app.db.Order("id ASC").Find(&results).Error)
	require.Len(t, results, 2)
	assert.Equal(t, client.ID, results[0].UserID)
	assert.Equal(t, 1, results[0].Prediction)
	assert.Equal(t, 0, results[1].Prediction)
}

func seedBands(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, app.db.Create([]*models.Recommendation{
		{
			Stage:           "Stage 2 (Mildly reduced function)",
			EGFRRangeLow:    60,
			EGFRRangeHigh:   89,
			LifestyleAdvice: "Keep blood pressure under control.",
			FoodAdvice:      "Reduce sodium intake.",
			MedicalAdvice:   "Monitor kidney function every 6-12 months.",
		},
		{
			Stage:           "Stage 3a (Mild to moderate reduction)",
			EGFRRangeLow:    45,
			EGFRRangeHigh:   59,
			LifestyleAdvice: "Moderate exercise as tolerated.",
			FoodAdvice:      "Moderate protein intake.",
			MedicalAdvice:   "Nephrology referral advised.",
		},
	}).Error)
}

func TestCalculateEGFR(t *testing.T) {
	app, e, _, _ := newTestApp(t)
	seedBands(t, app)

	rec := doJSON(e, http.MethodPost, "/calculate-egfr", map[string]any{
		"age":              60,
		"serum_creatinine": 1.0,
		"gender":           "female",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(64), body["egfr"])
	assert.Equal(t, "mL/min/1.73m²", body["unit"])
	assert.Equal(t, "Stage 2 (Mildly reduced function)", body["stage"])

	recommendations, ok := body["recommendations"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Keep blood pressure under control.", recommendations["lifestyle"])
	assert.Equal(t, "Reduce sodium intake.", recommendations["diet"])
	assert.Equal(t, "Monitor kidney function every 6-12 months.", recommendations["medical"])
}

func TestCalculateEGFRNoBandMatches(t *testing.T) {
	app, e, _, _ := newTestApp(t)
	seedBands(t, app)

	// young patient with low creatinine lands far above the highest band
	rec := doJSON(e, http.MethodPost, "/calculate-egfr", map[string]any{
		"age":              20,
		"serum_creatinine": 0.6,
		"gender":           "male",
	}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalculateEGFRValidation(t *testing.T) {
	_, e, _, _ := newTestApp(t)

	rec := doJSON(e, http.MethodPost, "/calculate-egfr", map[string]any{
		"age":              60,
		"serum_creatinine": 1.0,
		"gender":           "unknown",
	}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `Invalid gender. Use "male" or "female"`, decodeBody(t, rec)["error"])

	rec = doJSON(e, http.MethodPost, "/calculate-egfr", map[string]any{
		"age":    60,
		"gender": "male",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/calculate-egfr", map[string]any{
		"age":              60,
		"serum_creatinine": 0,
		"gender":           "male",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitInquiry(t *testing.T) {
	app, e, store, _ := newTestApp(t)

	// anonymous
	rec := doJSON(e, http.MethodPost, "/submit-inquiry", map[string]any{"message": "hi"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// admins are not clients here
	admin := createUser(t, app, "admin1", models.RoleAdmin)
	rec = doJSON(e, http.MethodPost, "/submit-inquiry", map[string]any{"message": "hi"}, openSession(t, store, admin))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	client := createUser(t, app, "client1", models.RoleClient)
	token := openSession(t, store, client)

	rec = doJSON(e, http.MethodPost, "/submit-inquiry", map[string]any{"message": "   "}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPost, "/submit-inquiry", map[string]any{"message": "How often should I test?"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var inquiry models.Inquiry
	require.NoError(t, app.db.First(&inquiry, "user_id = ?", client.ID).Error)
	assert.Equal(t, "How often should I test?", inquiry.Message)
	assert.Empty(t, inquiry.Response)
}

func TestViewGeneralInfo(t *testing.T) {
	app, e, store, _ := newTestApp(t)
	require.NoError(t, app.db.Create(&models.GeneralInfo{Title: "What is CKD", Content: "Chronic kidney disease explained."}).Error)

	rec := doJSON(e, http.MethodGet, "/view-general-info", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	client := createUser(t, app, "client1", models.RoleClient)
	rec = doJSON(e, http.MethodGet, "/view-general-info", nil, openSession(t, store, client))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "What is CKD", items[0]["title"])
}
