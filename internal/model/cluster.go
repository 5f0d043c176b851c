package model

import "encoding/json"

// ClusterRequest names a target cluster. The connection string is taken
// ad hoc from the request; it does not have to be a saved one.
type ClusterRequest struct {
	ConnectionString string `json:"connection_string" binding:"required,mongodsn" validate:"required"`
}

// CollectionsRequest lists collections of one database.
type CollectionsRequest struct {
	ConnectionString string `json:"connection_string" binding:"required,mongodsn" validate:"required"`
	Database         string `json:"database" binding:"required" validate:"required"`
}

// DocumentsRequest fetches one page of documents.
type DocumentsRequest struct {
	ConnectionString string `json:"connection_string" binding:"required,mongodsn" validate:"required"`
	Database         string `json:"database" binding:"required" validate:"required"`
	Collection       string `json:"collection" binding:"required" validate:"required"`
	Page             int    `json:"page" validate:"omitempty,min=1"`
	Limit            int    `json:"limit" validate:"omitempty,min=1,max=200"`
}

// SearchRequest searches one field of a collection.
type SearchRequest struct {
	ConnectionString string `json:"connection_string" binding:"required,mongodsn" validate:"required"`
	Database         string `json:"database" binding:"required" validate:"required"`
	Collection       string `json:"collection" binding:"required" validate:"required"`
	Field            string `json:"field" binding:"required" validate:"required"`
	Value            string `json:"value" binding:"required" validate:"required"`
	Page             int    `json:"page" validate:"omitempty,min=1"`
	Limit            int    `json:"limit" validate:"omitempty,min=1,max=200"`
}

// InsertDocumentRequest inserts one document into a collection.
type InsertDocumentRequest struct {
	ConnectionString string                 `json:"connection_string" binding:"required,mongodsn" validate:"required"`
	Database         string                 `json:"database" binding:"required" validate:"required"`
	Collection       string                 `json:"collection" binding:"required" validate:"required"`
	Document         map[string]interface{} `json:"document" binding:"required" validate:"required"`
}

// DocumentPage is one page of documents plus the total count.
// Documents are relaxed Extended JSON so types survive the round trip.
type DocumentPage struct {
	Documents []json.RawMessage `json:"documents"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
}
