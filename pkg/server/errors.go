// Copyright (c) 2025, The cn-food-mcp Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package server

import (
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	cnerrors "github.com/cnfood/cn-food-mcp/pkg/errors"
	"github.com/cnfood/cn-food-mcp/pkg/serializer"
)

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code cnerrors.ErrorCode) int {
	switch code {
	case cnerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cnerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case cnerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cnerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cnerrors.ErrCodeInsufficientData:
		return http.StatusUnprocessableEntity
	case cnerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cnerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cnerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cnerrors.ErrorCode) bool {
	switch code {
	case cnerrors.ErrCodeTimeout,
		cnerrors.ErrCodeUnavailable,
		cnerrors.ErrCodeRateLimitExceeded,
		cnerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map holding a overlaid with b, or nil when
// both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, status int,
	code cnerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, status, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. Structured errors keep
// their code, message and context; anything else is reported as INTERNAL
// with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	if se, ok := cnerrors.As(err); ok {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := extraDetails
	if err != nil {
		details = mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, cnerrors.ErrCodeInternal,
		fallbackMessage, true, details)
}
