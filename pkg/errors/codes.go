package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Common errors shared by all modules (service 00).
var (
	// ErrInvalidParam indicates malformed or missing request fields.
	ErrInvalidParam = Register(New(MakeCode(ServiceCommon, CategoryRequest, 1),
		http.StatusBadRequest, codes.InvalidArgument, "Invalid request parameters", "请求参数无效"))

	// ErrUnauthorized indicates the caller presented no or invalid identity.
	ErrUnauthorized = Register(New(MakeCode(ServiceCommon, CategoryAuth, 1),
		http.StatusUnauthorized, codes.Unauthenticated, "Unauthorized", "未授权"))

	// ErrInvalidToken indicates a malformed or unverifiable token.
	ErrInvalidToken = Register(New(MakeCode(ServiceCommon, CategoryAuth, 2),
		http.StatusUnauthorized, codes.Unauthenticated, "Invalid or expired token", "令牌无效或已过期"))

	// ErrTokenRevoked indicates the token was explicitly revoked.
	ErrTokenRevoked = Register(New(MakeCode(ServiceCommon, CategoryAuth, 3),
		http.StatusUnauthorized, codes.Unauthenticated, "Token has been revoked", "令牌已被吊销"))

	// ErrForbidden indicates the caller lacks permission for the resource.
	ErrForbidden = Register(New(MakeCode(ServiceCommon, CategoryPermission, 1),
		http.StatusForbidden, codes.PermissionDenied, "Forbidden", "禁止访问"))

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = Register(New(MakeCode(ServiceCommon, CategoryResource, 1),
		http.StatusNotFound, codes.NotFound, "Resource not found", "资源不存在"))

	// ErrAlreadyExists indicates a uniqueness conflict.
	ErrAlreadyExists = Register(New(MakeCode(ServiceCommon, CategoryConflict, 1),
		http.StatusConflict, codes.AlreadyExists, "Resource already exists", "资源已存在"))

	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = Register(New(MakeCode(ServiceCommon, CategoryInternal, 1),
		http.StatusInternalServerError, codes.Internal, "Internal server error", "服务器内部错误"))

	// ErrDatabase indicates a storage-layer failure. Retryable.
	ErrDatabase = Register(New(MakeCode(ServiceInfraDB, CategoryDatabase, 1),
		http.StatusServiceUnavailable, codes.Unavailable, "Storage temporarily unavailable", "存储暂时不可用"))

	// ErrTimeout indicates a bounded operation exceeded its deadline.
	ErrTimeout = Register(New(MakeCode(ServiceCommon, CategoryTimeout, 1),
		http.StatusGatewayTimeout, codes.DeadlineExceeded, "Operation timed out", "操作超时"))
)

// Gateway service errors (service 01).
var (
	// ErrUserNotFound indicates the account does not exist.
	ErrUserNotFound = Register(New(MakeCode(ServiceGateway, CategoryResource, 1),
		http.StatusNotFound, codes.NotFound, "User not found", "用户不存在"))

	// ErrUserExists indicates the username or email is already taken.
	ErrUserExists = Register(New(MakeCode(ServiceGateway, CategoryConflict, 1),
		http.StatusConflict, codes.AlreadyExists, "Username or email already exists", "用户名或邮箱已存在"))

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = Register(New(MakeCode(ServiceGateway, CategoryAuth, 1),
		http.StatusUnauthorized, codes.Unauthenticated, "Invalid username or password", "用户名或密码错误"))

	// ErrConnectionExists indicates the owner already saved this connection string.
	ErrConnectionExists = Register(New(MakeCode(ServiceGateway, CategoryConflict, 2),
		http.StatusConflict, codes.AlreadyExists, "Connection already saved", "连接已保存"))

	// ErrConnectionNotFound indicates no matching owned saved connection.
	ErrConnectionNotFound = Register(New(MakeCode(ServiceGateway, CategoryResource, 2),
		http.StatusNotFound, codes.NotFound, "Saved connection not found", "保存的连接不存在"))
)

// Cluster executor errors (service 02).
var (
	// ErrClusterUnreachable indicates the target cluster could not be reached.
	// The connection string is never included in the message.
	ErrClusterUnreachable = Register(New(MakeCode(ServiceCluster, CategoryNetwork, 1),
		http.StatusBadGateway, codes.Unavailable, "Failed to connect to target cluster", "无法连接目标集群"))

	// ErrClusterOperation indicates the operation failed on the target cluster.
	ErrClusterOperation = Register(New(MakeCode(ServiceCluster, CategoryInternal, 1),
		http.StatusBadGateway, codes.Internal, "Cluster operation failed", "集群操作失败"))
)
