package openrouter

import (
	"strings"

	"github.com/civilsim/ansys-extract/schema"
)

// reports routinely run hundreds of pages; the parameter tables sit in the
// first few, so truncating keeps the request inside token limits
const maxReportChars = 4000

// buildPrompt composes the extraction instruction for one report. The
// parameter list is generated from the catalog so prompt and schema can
// never drift apart.
func buildPrompt(reportText string) string {
	if len(reportText) > maxReportChars {
		reportText = reportText[:maxReportChars]
	}

	names := make([]string, len(schema.ExtractedFields))
	for i, f := range schema.ExtractedFields {
		names[i] = f.Name
	}

	var b strings.Builder
	b.WriteString("Task: Extract specific engineering parameters from the following ANSYS report and format them into values only.\n\n")
	b.WriteString("Extract values for:\n")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(".\n\nFormatting Rules:\n")
	b.WriteString("- Return the results as a single JSON object with the parameter names above as keys and values as floating-point numbers or strings.\n")
	b.WriteString("- Use scientific notation when appropriate (e.g., 1.017e-9).\n")
	b.WriteString("- Mark missing data as null.\n")
	b.WriteString("- Format Min/Max Deformation as a two-element array, e.g., [0.0, 0.00637].\n")
	b.WriteString("- Format Reaction Forces as a nested array, e.g., [[0,850,0],[0,850,0]].\n\n")
	b.WriteString("ANSYS REPORT (extracted from PDF):\n")
	b.WriteString(reportText)
	b.WriteString("\n\nOutput JSON format only, no explanations or additional text.")
	return b.String()
}
