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
// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Query operations classify their failures with an ErrorCode so transports
// can tell request-level rejections (ErrCodeInvalidRequest) apart from domain
// outcomes such as an unknown food id (ErrCodeNotFound) or a comparison with
// too few resolvable foods (ErrCodeInsufficientData).
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeNotFound,
//	    "food not found",
//	    map[string]any{
//	        "food_id": id,
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // render a structured not-found payload
//	}
package errors
