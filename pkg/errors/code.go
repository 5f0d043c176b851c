// Package errors provides the unified error handling system for MongoGate.
//
// Error Code Format: AABBCCC (7 digits)
//
//   - AA:  Service/Module code (00-99)
//   - BB:  Category code (00-99)
//   - CCC: Sequence number (000-999)
//
// Service Codes (AA):
//
//   - 00: Common/Base errors (all modules)
//   - 01: Gateway service (saved-connection registry, auth)
//   - 02: Cluster executor
//   - 10: Infrastructure errors (DB, cache)
//
// Category Codes (BB):
//
//   - 00: Success
//   - 01: Request/Validation errors (400)
//   - 02: Authentication errors (401)
//   - 03: Authorization errors (403)
//   - 04: Resource not found errors (404)
//   - 05: Conflict errors (409)
//   - 07: Internal errors (500)
//   - 08: Database errors (500/503)
//   - 10: Network errors (502/503)
//   - 11: Timeout errors (504)
package errors

// Service codes (AA)
const (
	// ServiceCommon is for common/base errors shared by all modules.
	ServiceCommon = 0

	// ServiceGateway is for the gateway service.
	ServiceGateway = 1

	// ServiceCluster is for the cluster executor.
	ServiceCluster = 2

	// ServiceInfraDB is for database infrastructure.
	ServiceInfraDB = 10
)

// Category codes (BB)
const (
	// CategorySuccess indicates successful operation.
	CategorySuccess = 0

	// CategoryRequest indicates request/validation errors.
	CategoryRequest = 1

	// CategoryAuth indicates authentication errors.
	CategoryAuth = 2

	// CategoryPermission indicates authorization errors.
	CategoryPermission = 3

	// CategoryResource indicates resource not found errors.
	CategoryResource = 4

	// CategoryConflict indicates resource conflict errors.
	CategoryConflict = 5

	// CategoryInternal indicates internal server errors.
	CategoryInternal = 7

	// CategoryDatabase indicates database errors.
	CategoryDatabase = 8

	// CategoryNetwork indicates network errors.
	CategoryNetwork = 10

	// CategoryTimeout indicates timeout errors.
	CategoryTimeout = 11
)

// MakeCode creates an error code from service, category, and sequence.
// Format: AABBCCC where AA=service, BB=category, CCC=sequence
func MakeCode(service, category, sequence int) int {
	return service*100000 + category*1000 + sequence
}

// ParseCode splits an error code into service, category, and sequence.
func ParseCode(code int) (service, category, sequence int) {
	return code / 100000, (code / 1000) % 100, code % 1000
}

// GetService returns the service part of an error code.
func GetService(code int) int {
	return code / 100000
}

// GetCategory returns the category part of an error code.
func GetCategory(code int) int {
	return (code / 1000) % 100
}

// IsSuccess reports whether the code represents success.
func IsSuccess(code int) bool {
	return code == 0
}

// IsClientError reports whether the code belongs to a client-side category.
func IsClientError(code int) bool {
	c := GetCategory(code)
	return c >= CategoryRequest && c <= CategoryConflict
}
