package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/mongogate/pkg/errors"
)

func TestSuccess(t *testing.T) {
	r := Success(map[string]string{"hello": "world"})
	defer Release(r)

	assert.True(t, r.IsSuccess())
	assert.Equal(t, 0, r.Code)
	assert.Equal(t, http.StatusOK, r.HTTPStatus())
	assert.NotNil(t, r.Data)
}

func TestCreated(t *testing.T) {
	r := Created(nil)
	defer Release(r)

	assert.True(t, r.IsSuccess())
	assert.Equal(t, http.StatusCreated, r.HTTPStatus())
}

func TestPage(t *testing.T) {
	r := Page([]int{1, 2, 3}, 42, 2, 10)
	defer Release(r)

	pd, ok := r.Data.(*PageData)
	require.True(t, ok)
	assert.Equal(t, int64(42), pd.Total)
	assert.Equal(t, 2, pd.Page)
	assert.Equal(t, 10, pd.PageSize)
}

func TestErr(t *testing.T) {
	r := Err(errors.ErrConnectionExists)
	defer Release(r)

	assert.False(t, r.IsSuccess())
	assert.Equal(t, errors.ErrConnectionExists.Code, r.Code)
	assert.Equal(t, http.StatusConflict, r.HTTPStatus())
	assert.Nil(t, r.Data)

	// nil 错误等同于成功
	ok := Err(nil)
	defer Release(ok)
	assert.True(t, ok.IsSuccess())
}

func TestWithRequestID(t *testing.T) {
	r := Success(nil).WithRequestID("01HZX3K9T2")
	defer Release(r)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "01HZX3K9T2")
	// httpStatus 不参与序列化
	assert.NotContains(t, string(raw), "httpStatus")
}

func TestPoolReuse(t *testing.T) {
	r := Success("payload").WithRequestID("req-1")
	Release(r)

	// 归还后字段被重置
	r2 := Acquire()
	defer Release(r2)
	assert.Equal(t, 0, r2.Code)
	assert.Empty(t, r2.Message)
	assert.Nil(t, r2.Data)
	assert.Empty(t, r2.RequestID)
}
