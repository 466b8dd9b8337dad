package cities

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestIsKnown(t *testing.T) {
	require.True(t, IsKnown("Nouakchott"))
	require.True(t, IsKnown("نواكشوط"))
	require.True(t, IsKnown("Kaédi"))
	require.False(t, IsKnown("Paris"))
	require.False(t, IsKnown(""))
}

func TestListHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/cities", nil))

	require.Equal(t, 200, w.Code)
	var body struct {
		Status string `json:"status"`
		Data   []City `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.Len(t, body.Data, len(All))
	require.Equal(t, "Nouakchott", body.Data[0].NameFr)
	require.Equal(t, "نواكشوط", body.Data[0].NameAr)
}
