package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medmatch/configs"
	"medmatch/entity"
	"medmatch/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *configs.Config {
	return &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
}

func testRouter(cfg *configs.Config, db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/doctor-only", AuthMiddleware(cfg, entity.RoleDoctor), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c)})
	})
	if db != nil {
		r.POST("/apply", AuthMiddleware(cfg, entity.RoleDoctor), RequireVerified(db), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := testRouter(testConfig(), nil)

	if w := doRequest(r, http.MethodGet, "/doctor-only", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/doctor-only", "garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsWrongRole(t *testing.T) {
	cfg := testConfig()
	r := testRouter(cfg, nil)

	token, err := utils.GenerateToken(&entity.User{Role: entity.RoleHospital}, cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		t.Fatal(err)
	}
	if w := doRequest(r, http.MethodGet, "/doctor-only", token); w.Code != http.StatusForbidden {
		t.Errorf("wrong role: status = %d, want 403", w.Code)
	}
}

func TestAuthMiddlewareAcceptsDoctor(t *testing.T) {
	cfg := testConfig()
	r := testRouter(cfg, nil)

	user := &entity.User{Role: entity.RoleDoctor}
	user.ID = 7
	token, err := utils.GenerateToken(user, cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		t.Fatal(err)
	}
	if w := doRequest(r, http.MethodGet, "/doctor-only", token); w.Code != http.StatusOK {
		t.Errorf("valid doctor token: status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
}

func TestRequireVerifiedGate(t *testing.T) {
	cfg := testConfig()

	db, err := gorm.Open(sqlite.Open("file:mwverified?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		t.Fatal(err)
	}

	unverified := &entity.User{Username: "alice", Email: "a@x.com", Role: entity.RoleDoctor}
	verified := &entity.User{Username: "carol", Email: "c@x.com", Role: entity.RoleDoctor, IsVerified: true}
	if err := db.Create(unverified).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(verified).Error; err != nil {
		t.Fatal(err)
	}

	r := testRouter(cfg, db)

	tokenUnverified, _ := utils.GenerateToken(unverified, cfg.JWTSecret, cfg.JWTTTL)
	if w := doRequest(r, http.MethodPost, "/apply", tokenUnverified); w.Code != http.StatusForbidden {
		t.Errorf("unverified doctor: status = %d, want 403", w.Code)
	}

	tokenVerified, _ := utils.GenerateToken(verified, cfg.JWTSecret, cfg.JWTTTL)
	if w := doRequest(r, http.MethodPost, "/apply", tokenVerified); w.Code != http.StatusOK {
		t.Errorf("verified doctor: status = %d, want 200 (%s)", w.Code, w.Body.String())
	}
}
