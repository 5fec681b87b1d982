package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/database"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/internal/models"
	"github.com/rudra6155/Tree-Plantation-Planner-MVP/pkg/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func createTestUser(t *testing.T, prefix string) string {
	t.Helper()
	passHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := models.UserProfile{
		ID:       utils.GenerateID(),
		Username: prefix + "_user",
		Email:    prefix + "@test.com",
		Password: string(passHash),
		Level:    1,
		JoinDate: time.Now().Format(models.DateLayout),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", prefix, err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	return token
}

func performRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyReader *strings.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		bodyReader = strings.NewReader(string(jsonBytes))
	} else {
		bodyReader = strings.NewReader("")
	}

	req, _ := http.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body
}

func TestGardenFlow_e2e(t *testing.T) {
	// 1. Setup
	setupTestDB(t)
	r := setupRouter()

	token := createTestUser(t, "gardener")

	// 2. Create a plant
	w := performRequest(r, "POST", "/api/plants", map[string]interface{}{
		"species":     "Neem",
		"plantedDate": time.Now().AddDate(0, 0, -10).Format(models.DateLayout),
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	createResp := decodeBody(t, w)
	plant := createResp["plant"].(map[string]interface{})
	plantID := plant["id"].(string)
	assert.Equal(t, "Neem", plant["name"])
	assert.Equal(t, string(models.StageNewlyPlanted), plant["growthStage"])

	// First plant earns the starter badge
	earned := createResp["badgesEarned"].([]interface{})
	assert.Contains(t, earned, "First Sprout")
	assert.Equal(t, string(models.ModeGuardian), createResp["mode"])

	// 3. List plants with advisories
	wList := performRequest(r, "GET", "/api/plants", nil, token)
	assert.Equal(t, http.StatusOK, wList.Code)

	listResp := decodeBody(t, wList)
	plants := listResp["plants"].([]interface{})
	assert.Len(t, plants, 1)
	first := plants[0].(map[string]interface{})
	assert.InDelta(t, 10, first["daysSincePlanted"].(float64), 1)
	assert.NotEmpty(t, first["nextAction"])

	// 4. Water the plant
	wWater := performRequest(r, "POST", "/api/plants/"+plantID+"/water", map[string]interface{}{}, token)
	assert.Equal(t, http.StatusOK, wWater.Code)

	// 5. Update status
	wStatus := performRequest(r, "PUT", "/api/plants/"+plantID+"/status", map[string]interface{}{
		"growthStage":  string(models.StageSeedling),
		"healthStatus": string(models.HealthExcellent),
	}, token)
	assert.Equal(t, http.StatusOK, wStatus.Code)

	statusResp := decodeBody(t, wStatus)
	updated := statusResp["plant"].(map[string]interface{})
	assert.Equal(t, string(models.StageSeedling), updated["growthStage"])

	// 6. Impact reflects the tracked plant
	wImpact := performRequest(r, "GET", "/api/impact", nil, token)
	assert.Equal(t, http.StatusOK, wImpact.Code)

	impactResp := decodeBody(t, wImpact)
	impact := impactResp["impact"].(map[string]interface{})
	assert.Greater(t, impact["carbonSequesteredKg"].(float64), 0.0)

	// 7. Profile carries XP from watering and status update plus badge bonus
	wProfile := performRequest(r, "GET", "/api/profile", nil, token)
	assert.Equal(t, http.StatusOK, wProfile.Code)

	profileResp := decodeBody(t, wProfile)
	profile := profileResp["profile"].(map[string]interface{})
	// 50 (badge) + 10 (water) + 20 (status)
	assert.Equal(t, float64(80), profile["experiencePoints"])
	assert.NotEmpty(t, profileResp["rank"])
	assert.Greater(t, profileResp["greenScore"].(float64), 0.0)

	// 8. Remove the plant
	wDelete := performRequest(r, "DELETE", "/api/plants/"+plantID, nil, token)
	assert.Equal(t, http.StatusOK, wDelete.Code)

	wList2 := performRequest(r, "GET", "/api/plants", nil, token)
	listResp2 := decodeBody(t, wList2)
	assert.Equal(t, float64(0), listResp2["count"])
	// Earned badges survive plant removal
	wProfile2 := performRequest(r, "GET", "/api/profile", nil, token)
	profileResp2 := decodeBody(t, wProfile2)
	badges := profileResp2["badges"].([]interface{})
	assert.Len(t, badges, 1)
}

func TestGardenFlow_PersistenceAcrossSessions(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	token := createTestUser(t, "returning")

	w := performRequest(r, "POST", "/api/plants", map[string]interface{}{
		"species": "Tulsi",
	}, token)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Logout evicts the in-memory session; durable state must survive
	wLogout := performRequest(r, "POST", "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, wLogout.Code)

	wList := performRequest(r, "GET", "/api/plants", nil, token)
	assert.Equal(t, http.StatusOK, wList.Code)

	listResp := decodeBody(t, wList)
	assert.Equal(t, float64(1), listResp["count"])
	plants := listResp["plants"].([]interface{})
	rehydrated := plants[0].(map[string]interface{})
	assert.Equal(t, "Tulsi (Holy Basil)", rehydrated["name"])
}

func TestRecommendations_Public(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	// Outdoor: tropical, polluted, loamy soil
	w := performRequest(r, "GET", "/api/recommendations?climateZone=Tropical&rainfall=1200&pollution=High&soil=Loamy", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	assert.Greater(t, resp["count"].(float64), 0.0)

	// Balcony: small shaded space
	wB := performRequest(r, "GET", "/api/recommendations/balcony?space=Small&sunlightHours=2", nil, "")
	assert.Equal(t, http.StatusOK, wB.Code)

	respB := decodeBody(t, wB)
	recs := respB["recommendations"].([]interface{})
	assert.NotEmpty(t, recs)
	for _, rec := range recs {
		species := rec.(map[string]interface{})
		needs := species["sunlightNeed"].([]interface{})
		assert.Contains(t, needs, "Low")
	}
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/auth/register", map[string]interface{}{
		"username": "new_gardener",
		"email":    "new@test.com",
		"password": "GrowTrees1",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody(t, w)
	assert.NotEmpty(t, resp["token"])

	// Duplicate email conflicts
	wDup := performRequest(r, "POST", "/api/auth/register", map[string]interface{}{
		"username": "other_name",
		"email":    "new@test.com",
		"password": "GrowTrees1",
	}, "")
	assert.Equal(t, http.StatusConflict, wDup.Code)

	wLogin := performRequest(r, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "new@test.com",
		"password": "GrowTrees1",
	}, "")
	assert.Equal(t, http.StatusOK, wLogin.Code)

	wBad := performRequest(r, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "new@test.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, wBad.Code)
}
