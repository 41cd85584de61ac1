// Copyright 2025 Poiesic Systems
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

package core

import "errors"

// Domain errors
var (
	// ErrMissingInput indicates a required keyword or argument was not supplied.
	// Callers report it as guidance, not as a failure.
	ErrMissingInput = errors.New("missing input")

	// ErrTableNotFound indicates the data for a named table does not exist.
	ErrTableNotFound = errors.New("table not found")

	// ErrMalformedTable indicates a table lacks a column a query requires.
	ErrMalformedTable = errors.New("malformed table")

	// ErrSheetNotFound indicates a workbook lacks a sheet extraction expects.
	ErrSheetNotFound = errors.New("sheet not found")
)
