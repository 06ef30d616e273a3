package validation

import (
	"strings"

	"github.com/reoring/goskema"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// CodeStructure marks issues found on a decoded form rather than raw JSON.
const CodeStructure = "structure"

// Issue is one problem with a location. Path is a JSON pointer; Field is the
// same location in dotted form ("pages[0].elements[2].title").
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Merge appends other's issues, keeping Valid consistent.
func (r Result) Merge(other Result) Result {
	out := Result{Issues: append(append([]Issue(nil), r.Issues...), other.Issues...)}
	out.Valid = len(out.Issues) == 0
	return out
}

// Lint reports structural problems on an already decoded form: duplicate
// field ids, duplicate choice values, missing default locale entries and
// sub-structures attached to kinds that do not own them.
func Lint(form model.Form) Result {
	problems := model.CheckForm(form)
	result := Result{Valid: len(problems) == 0}
	for _, problem := range problems {
		result.Issues = append(result.Issues, Issue{
			Path:    problem.Path,
			Field:   fieldPathFromPointer(problem.Path),
			Code:    CodeStructure,
			Message: problemMessage(problem),
		})
	}
	return result
}

func problemMessage(problem model.Problem) string {
	if problem.Err == nil {
		return "unknown problem"
	}
	return strings.TrimPrefix(problem.Err.Error(), "form: ")
}

func resultFromIssues(issues goskema.Issues) Result {
	result := Result{Valid: len(issues) == 0}
	for _, issue := range issues {
		path := issue.Path
		if path == "" {
			path = "/"
		}
		msg := strings.TrimSpace(issue.Message)
		if msg == "" {
			msg = issue.Code
		}
		result.Issues = append(result.Issues, Issue{
			Path:    path,
			Field:   fieldPathFromPointer(path),
			Code:    issue.Code,
			Message: msg,
		})
	}
	return result
}

func fieldPathFromPointer(pointer string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	for _, part := range strings.Split(trimmed, "/") {
		segment := strings.ReplaceAll(part, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		switch {
		case segment == "":
			continue
		case isNumeric(segment):
			out.WriteString("[" + segment + "]")
		default:
			if out.Len() > 0 {
				out.WriteByte('.')
			}
			out.WriteString(segment)
		}
	}
	return out.String()
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
