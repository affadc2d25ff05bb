package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	applabeling "github.com/sellerdesk/backend/internal/application/labeling"
	"github.com/sellerdesk/backend/internal/infrastructure/kv"
	"github.com/sellerdesk/backend/internal/infrastructure/persistence"
	"github.com/sellerdesk/backend/internal/interfaces/http/middleware"
	"github.com/sellerdesk/backend/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	middleware.SetupValidator()

	ctx := context.Background()
	store := kv.NewMemoryStore()
	log := zap.NewNop()

	templateRepo := persistence.NewTemplateRepository(ctx, store, log, nil)
	elementRepo := persistence.NewElementRepository(ctx, store, log, nil)
	queueRepo := persistence.NewQueueRepository(ctx, store, log, nil)
	cleanupRepo := persistence.NewCleanupRuleRepository(ctx, store, log, nil)
	productRepo := persistence.NewSeededProductRepository()

	templateSvc := applabeling.NewTemplateService(templateRepo, elementRepo, log)
	queueSvc := applabeling.NewQueueService(queueRepo, templateRepo, cleanupRepo, productRepo, log)

	engine := gin.New()
	r := router.NewRouter(engine)
	r.Register(TemplateRoutes(NewTemplateHandler(templateSvc)))
	r.Register(ElementRoutes(NewTemplateHandler(templateSvc)))
	r.Register(QueueRoutes(NewQueueHandler(queueSvc)))
	r.Register(SystemRoutes(NewSystemHandler()))
	r.Setup()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestTemplateEndpoints_CreateAndDefaultLifecycle(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/templates", `{"name":"기본 라벨"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData(t, w)
	id := created["id"].(string)
	assert.Equal(t, float64(3), created["columns"])
	assert.Equal(t, float64(50), created["labelWidth"])

	w = doJSON(t, engine, http.MethodPost, "/api/v1/templates/"+id+"/default", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "기본 템플릿이 변경되었습니다")

	// The default template cannot be deleted.
	w = doJSON(t, engine, http.MethodDelete, "/api/v1/templates/"+id, "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INVALID_STATE")
}

func TestTemplateEndpoints_ValidationFailure(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/templates", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_VALIDATION")

	w = doJSON(t, engine, http.MethodGet, "/api/v1/templates/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestElementEndpoints_AddAndMove(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/templates", `{"name":"기본 라벨"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	templateID := decodeData(t, w)["id"].(string)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/templates/"+templateID+"/elements",
		`{"type":"barcode","x":500,"y":500}`)
	require.Equal(t, http.StatusCreated, w.Code)
	element := decodeData(t, w)
	assert.Equal(t, float64(160), element["width"])
	assert.Equal(t, float64(40), element["x"])
	assert.Equal(t, float64(80), element["y"])

	w = doJSON(t, engine, http.MethodPost, "/api/v1/templates/"+templateID+"/elements",
		`{"type":"hologram","x":0,"y":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	elementID := element["id"].(string)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/elements/"+elementID+"/move", `{"x":-50,"y":-50}`)
	require.Equal(t, http.StatusOK, w.Code)
	moved := decodeData(t, w)
	assert.Equal(t, float64(0), moved["x"])
	assert.Equal(t, float64(0), moved["y"])
}

func TestQueueEndpoints_EnqueueAndEmptySelection(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/templates", `{"name":"기본 라벨"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	templateID := decodeData(t, w)["id"].(string)
	w = doJSON(t, engine, http.MethodPost, "/api/v1/templates/"+templateID+"/default", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/queue", `{"skus":["TS-001"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1개 상품이 인쇄 대기열에 추가되었습니다")

	w = doJSON(t, engine, http.MethodPost, "/api/v1/queue", `{"skus":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_EMPTY_SELECTION")

	w = doJSON(t, engine, http.MethodPost, "/api/v1/queue/status", `{"ids":["`+templateID+`"],"status":"SHREDDED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemEndpoints_Health(t *testing.T) {
	engine := newTestEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/system/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
