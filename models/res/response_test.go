package res

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func recordJSON(t *testing.T, handler func(c *gin.Context)) (int, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应不是合法JSON: %v", err)
	}
	return w.Code, body
}

func TestSuccessWithPageMath(t *testing.T) {
	status, body := recordJSON(t, func(c *gin.Context) {
		SuccessWithPage(c, []string{"a", "b"}, 25, 2, 10)
	})
	if status != http.StatusOK || !body.Success {
		t.Fatalf("期望成功响应，实际 status=%d success=%v", status, body.Success)
	}

	page := body.Data.(map[string]interface{})
	if page["total_pages"].(float64) != 3 {
		t.Fatalf("25条每页10条应为3页，实际 %v", page["total_pages"])
	}
	if page["has_more"].(bool) != true {
		t.Fatal("第2页共3页应还有更多数据")
	}
}

func TestSuccessWithPageZeroPageSize(t *testing.T) {
	_, body := recordJSON(t, func(c *gin.Context) {
		SuccessWithPage(c, []string{}, 0, 1, 0)
	})
	page := body.Data.(map[string]interface{})
	if page["page_size"].(float64) != 10 {
		t.Fatalf("pageSize为0应回退到10，实际 %v", page["page_size"])
	}
}

func TestErrorDefaultMessage(t *testing.T) {
	_, body := recordJSON(t, func(c *gin.Context) {
		Error(c, ArticleNotFound, "")
	})
	if body.Success {
		t.Fatal("错误响应success应为false")
	}
	if body.Message != GetMsg(ArticleNotFound) {
		t.Fatalf("空消息应回退到码表文案，实际 %q", body.Message)
	}
}
