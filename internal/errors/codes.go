package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	CodeSnapshotNotFound   Code = "SNAPSHOT_NOT_FOUND"
	CodeSnapshotReadError  Code = "SNAPSHOT_READ_ERROR"
	CodeSnapshotParseError Code = "SNAPSHOT_PARSE_ERROR"

	CodePrecondition    Code = "PRECONDITION_VIOLATION"
	CodeComparisonError Code = "COMPARISON_ERROR"
	CodeReportingError  Code = "REPORTING_ERROR"
)

func (c Code) String() string {
	return string(c)
}
