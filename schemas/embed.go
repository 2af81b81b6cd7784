// Package schemas embeds the JSON Schemas of the documents this module emits.
package schemas

import _ "embed"

// AnalysisResultFile is the file name of the AnalysisResult schema.
const AnalysisResultFile = "analysis_result.schema.json"

// AnalysisResult is the JSON Schema of an AnalysisResult document.
//
//go:embed analysis_result.schema.json
var AnalysisResult []byte
