package biz

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kart-io/mongogate/internal/model"
	"github.com/kart-io/mongogate/pkg/errors"
)

const (
	ownerA = "owner-a"
	ownerB = "owner-b"

	dsnLocal = "mongodb://localhost:27017"
	dsnAtlas = "mongodb+srv://cluster0.example.mongodb.net"
)

func newConnectionBizForTest() ConnectionBiz {
	return NewConnectionBiz(newFakeFactory())
}

func TestConnectionBiz_Register(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  string
		req      *model.SaveConnectionRequest
		wantErr  int
		wantConn string
	}{
		{
			name:     "保存连接成功",
			ownerID:  ownerA,
			req:      &model.SaveConnectionRequest{ConnectionString: dsnLocal, Label: "本地"},
			wantConn: dsnLocal,
		},
		{
			name:     "首尾空白被去除",
			ownerID:  ownerA,
			req:      &model.SaveConnectionRequest{ConnectionString: "  " + dsnLocal + "\n"},
			wantConn: dsnLocal,
		},
		{
			name:     "任意非空字符串按原样保存",
			ownerID:  ownerA,
			req:      &model.SaveConnectionRequest{ConnectionString: "some-opaque-endpoint"},
			wantConn: "some-opaque-endpoint",
		},
		{
			name:    "空连接串返回参数错误",
			ownerID: ownerA,
			req:     &model.SaveConnectionRequest{ConnectionString: "   "},
			wantErr: errors.ErrInvalidParam.Code,
		},
		{
			name:    "缺少所有者返回未授权",
			ownerID: "",
			req:     &model.SaveConnectionRequest{ConnectionString: dsnLocal},
			wantErr: errors.ErrUnauthorized.Code,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConnectionBizForTest()
			conn, err := b.Register(context.Background(), tt.ownerID, tt.req)
			if tt.wantErr != 0 {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, tt.wantErr), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantConn, conn.ConnectionString)
			assert.Equal(t, tt.ownerID, conn.OwnerID)
			assert.False(t, conn.CreatedAt.IsZero())
		})
	}
}

func TestConnectionBiz_Register_Duplicate(t *testing.T) {
	b := newConnectionBizForTest()
	ctx := context.Background()

	_, err := b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
	require.NoError(t, err)

	// 同一所有者重复保存被拒绝
	_, err = b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
	assert.True(t, errors.IsCode(err, errors.ErrConnectionExists.Code), "unexpected error: %v", err)

	// 仅空白差异视为同一条目
	_, err = b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: "  " + dsnLocal + "  "})
	assert.True(t, errors.IsCode(err, errors.ErrConnectionExists.Code), "unexpected error: %v", err)

	// 不同所有者保存同一连接串互不影响
	_, err = b.Register(ctx, ownerB, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
	assert.NoError(t, err)
}

func TestConnectionBiz_Register_Concurrent(t *testing.T) {
	b := newConnectionBizForTest()
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
		}(i)
	}
	wg.Wait()

	// 并发保存同一连接串恰好一次成功
	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.IsCode(err, errors.ErrConnectionExists.Code):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)

	conns, err := b.List(ctx, ownerA)
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestConnectionBiz_List(t *testing.T) {
	b := newConnectionBizForTest()
	ctx := context.Background()

	// 空注册表返回空列表
	conns, err := b.List(ctx, ownerA)
	require.NoError(t, err)
	assert.Empty(t, conns)

	_, err = b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
	require.NoError(t, err)
	_, err = b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: dsnAtlas})
	require.NoError(t, err)
	_, err = b.Register(ctx, ownerB, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
	require.NoError(t, err)

	// 仅返回自己的记录，最新在前
	conns, err = b.List(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, conns, 2)
	assert.Equal(t, dsnAtlas, conns[0].ConnectionString)
	assert.Equal(t, dsnLocal, conns[1].ConnectionString)

	conns, err = b.List(ctx, ownerB)
	require.NoError(t, err)
	assert.Len(t, conns, 1)
}

func TestConnectionBiz_Remove(t *testing.T) {
	b := newConnectionBizForTest()
	ctx := context.Background()

	_, err := b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
	require.NoError(t, err)

	// 删除他人记录返回不存在，且不影响原记录
	err = b.Remove(ctx, ownerB, dsnLocal)
	assert.True(t, errors.IsCode(err, errors.ErrConnectionNotFound.Code), "unexpected error: %v", err)
	conns, err := b.List(ctx, ownerA)
	require.NoError(t, err)
	assert.Len(t, conns, 1)

	// 删除成功后可重新保存
	require.NoError(t, b.Remove(ctx, ownerA, dsnLocal))
	conns, err = b.List(ctx, ownerA)
	require.NoError(t, err)
	assert.Empty(t, conns)

	_, err = b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: dsnLocal})
	assert.NoError(t, err)

	// 再次删除同一条目返回不存在
	require.NoError(t, b.Remove(ctx, ownerA, dsnLocal))
	err = b.Remove(ctx, ownerA, dsnLocal)
	assert.True(t, errors.IsCode(err, errors.ErrConnectionNotFound.Code), "unexpected error: %v", err)
}

func TestConnectionBiz_OpaqueString_RoundTrip(t *testing.T) {
	b := newConnectionBizForTest()
	ctx := context.Background()

	// 连接串视为不透明值：无需可解析，保存、列出、删除全程按原样处理
	const opaque = "some-opaque-endpoint?with=anything"
	conn, err := b.Register(ctx, ownerA, &model.SaveConnectionRequest{ConnectionString: opaque})
	require.NoError(t, err)
	assert.Equal(t, opaque, conn.ConnectionString)

	conns, err := b.List(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, conns, 1)
	assert.Equal(t, opaque, conns[0].ConnectionString)

	require.NoError(t, b.Remove(ctx, ownerA, opaque))
	conns, err = b.List(ctx, ownerA)
	require.NoError(t, err)
	assert.Empty(t, conns)
}
