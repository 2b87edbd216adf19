// Package schemas holds the JSON Schemas for the artifacts the CLI writes.
package schemas

import _ "embed"

// ResumeRecordFile is the file name of the Resume Record schema
const ResumeRecordFile = "resume_record.schema.json"

// ResumeRecord is the Resume Record schema document
//
//go:embed resume_record.schema.json
var ResumeRecord string
