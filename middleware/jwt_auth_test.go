package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/config"
	"inkwell/global"
	"inkwell/models/ctypes"
	"inkwell/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// setupAuthTest 准备中间件依赖：测试配置、空日志和miniredis
func setupAuthTest(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	global.Config = &config.Config{
		Jwt: config.Jwt{
			Secret:  "test-secret",
			Expires: 7,
			Issuer:  "inkwell-test",
		},
	}
	global.Log = zap.NewNop().Sugar()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("启动miniredis失败: %v", err)
	}
	t.Cleanup(mr.Close)
	global.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// adminRouter 挂一条管理员路由，记录handler是否真正执行过
func adminRouter(executed *bool) *gin.Engine {
	r := gin.New()
	r.POST("/admin", JwtAdmin(), func(c *gin.Context) {
		*executed = true
		c.Status(http.StatusOK)
	})
	return r
}

func accessTokenOf(t *testing.T, role ctypes.UserRole, userID uint) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(utils.PayLoad{
		Account: "tester",
		Role:    role,
		UserID:  userID,
	})
	if err != nil {
		t.Fatalf("生成access token失败: %v", err)
	}
	return token
}

func TestJwtAdminRejectsNonAdminBeforeHandler(t *testing.T) {
	setupAuthTest(t)

	executed := false
	r := adminRouter(&executed)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+accessTokenOf(t, ctypes.RoleUser, 2))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("期望403，实际%d", w.Code)
	}
	if executed {
		t.Fatal("非管理员请求不应执行管理员handler")
	}
}

func TestJwtAdminAllowsAdmin(t *testing.T) {
	setupAuthTest(t)

	executed := false
	r := adminRouter(&executed)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+accessTokenOf(t, ctypes.RoleAdmin, 1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际%d", w.Code)
	}
	if !executed {
		t.Fatal("管理员请求应执行handler")
	}
}

func TestJwtAuthMissingToken(t *testing.T) {
	setupAuthTest(t)

	executed := false
	r := gin.New()
	r.GET("/me", JwtAuth(), func(c *gin.Context) {
		executed = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望401，实际%d", w.Code)
	}
	if executed {
		t.Fatal("缺少token的请求不应执行handler")
	}
}
