package utils

import (
	"encoding/json"
	"net/http"

	"hybrid_recommend_viewer/models"
)

// WriteFormattedJSON writes indented JSON with non-ASCII text left verbatim.
func WriteFormattedJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	encoder.Encode(data)
}

// WriteSuccessResponse writes a success envelope.
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, models.NewSuccessResponse(data))
}

// WriteErrorResponse writes an error envelope with the canned message.
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse writes an error envelope with a custom message.
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, models.NewCustomErrorResponse(code, message, data))
}

// ValidateUID validates the uid path parameter.
func ValidateUID(w http.ResponseWriter, uid string) bool {
	if uid == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "uid",
		})
		return false
	}
	return true
}
