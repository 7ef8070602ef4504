// Package docs registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.HealthResponse"}}
                }
            }
        },
        "/api/upload-video": {
            "post": {
                "description": "Stores a video file and returns its identifier. The part's content type must start with video/.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Video"],
                "summary": "Upload a video",
                "parameters": [
                    {"type": "file", "description": "Video file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/video.UploadVideoResponse"}},
                    "400": {"description": "Not a video or missing file", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "413": {"description": "Upload too large", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/api/process-video": {
            "post": {
                "description": "Extracts audio, transcribes it, optionally translates each caption and writes an SRT file.\nTranslation failures keep the original caption.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Video"],
                "summary": "Generate subtitles",
                "parameters": [
                    {"type": "string", "description": "Upload identifier", "name": "file_id", "in": "formData", "required": true},
                    {"type": "string", "default": "original", "description": "Target language code or original", "name": "target_language", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/video.ProcessVideoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Unknown upload", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "409": {"description": "Upload is already being processed", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "500": {"description": "Extraction or transcription failed", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/api/download-srt/{filename}": {
            "get": {
                "description": "Returns the raw SRT bytes as an attachment",
                "produces": ["application/octet-stream"],
                "tags": ["Video"],
                "summary": "Download subtitles",
                "parameters": [
                    {"type": "string", "description": "Subtitle file name returned by process-video", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/api/languages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Video"],
                "summary": "Supported languages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/video.LanguagesResponse"}}
                }
            }
        },
        "/api/jobs/{file_id}": {
            "get": {
                "description": "Status, subtitle file and error of the most recent process call for an upload",
                "produces": ["application/json"],
                "tags": ["Video"],
                "summary": "Latest processing job",
                "parameters": [
                    {"type": "string", "description": "Upload identifier", "name": "file_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/video.JobResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VIDEO_NOT_FOUND"},
                "message": {"type": "string", "example": "Video file not found"},
                "info": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "common.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "message": {"type": "string", "example": "Video subtitle service is running"}
            }
        },
        "video.UploadVideoResponse": {
            "type": "object",
            "properties": {
                "file_id": {"type": "string"},
                "filename": {"type": "string", "example": "lecture.mp4"},
                "size": {"type": "integer", "example": 1048576},
                "message": {"type": "string", "example": "Video uploaded successfully"}
            }
        },
        "video.ProcessVideoResponse": {
            "type": "object",
            "properties": {
                "file_id": {"type": "string"},
                "job_id": {"type": "string"},
                "srt_file": {"type": "string"},
                "transcription": {"type": "string"},
                "language_detected": {"type": "string", "example": "en"},
                "segments_count": {"type": "integer", "example": 42},
                "message": {"type": "string", "example": "Video processed successfully"}
            }
        },
        "video.LanguagesResponse": {
            "type": "object",
            "properties": {
                "languages": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "video.JobResponse": {
            "type": "object",
            "properties": {
                "job_id": {"type": "string"},
                "file_id": {"type": "string"},
                "status": {"type": "string", "example": "completed"},
                "target_language": {"type": "string", "example": "fr"},
                "srt_file": {"type": "string"},
                "language_detected": {"type": "string"},
                "segments_count": {"type": "integer"},
                "error": {"type": "string"},
                "started_at": {"type": "string"},
                "completed_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Video Subtitle API",
	Description:      "Upload a video, transcribe its speech, optionally translate it and download SRT subtitles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
